package usecases

import "octofit.backend/internal/domain/entities"

type seedTeam struct {
	name        string
	description string
	heroes      []seedHero
}

type seedHero struct {
	name     string
	email    string
	password string
}

var seedTeams = []seedTeam{
	{
		name:        "Team Marvel",
		description: "Avengers assemble! The mightiest heroes of Earth united for fitness domination.",
		heroes: []seedHero{
			{"Tony Stark", "ironman@marvel.com", "arc_reactor_3000"},
			{"Steve Rogers", "captain@marvel.com", "shield_throw_1942"},
			{"Thor Odinson", "thor@asgard.com", "mjolnir_worthy"},
			{"Natasha Romanoff", "blackwidow@shield.com", "red_ledger"},
			{"Bruce Banner", "hulk@marvel.com", "gamma_smash"},
			{"Peter Parker", "spiderman@marvel.com", "web_slinger"},
		},
	},
	{
		name:        "Team DC",
		description: "Justice League united! Protecting wellness and crushing fitness goals.",
		heroes: []seedHero{
			{"Bruce Wayne", "batman@wayneenterprises.com", "dark_knight"},
			{"Clark Kent", "superman@dailyplanet.com", "kryptonite_free"},
			{"Diana Prince", "wonderwoman@themyscira.com", "lasso_truth"},
			{"Barry Allen", "flash@ccpd.com", "speed_force"},
			{"Arthur Curry", "aquaman@atlantis.com", "ocean_master"},
			{"Hal Jordan", "greenlantern@oa.com", "willpower_ring"},
		},
	},
}

var seedActivityTypes = []string{"Running", "Cycling", "Swimming", "Weight Training", "Yoga", "Boxing", "HIIT"}

// distance is only tracked for these activity types
var seedDistanceTypes = map[string]bool{"Running": true, "Cycling": true, "Swimming": true}

// Activity generation bounds, inclusive.
const (
	seedMinActivities     = 5
	seedMaxActivities     = 10
	seedMinDuration       = 20
	seedMaxDuration       = 120
	seedMinDistanceKM     = 2.0
	seedMaxDistanceKM     = 15.0
	seedMinCaloriesPerMin = 5
	seedMaxCaloriesPerMin = 15
	seedMaxAgeDays        = 30
)

func seedWorkouts() []*entities.Workout {
	return []*entities.Workout{
		{
			Name:          "Superhero Strength Training",
			Description:   "Build strength like Thor! Focus on compound movements to increase overall power.",
			Difficulty:    entities.DifficultyAdvanced,
			Duration:      60,
			WorkoutType:   "Strength",
			TargetMuscles: []string{"chest", "back", "legs", "shoulders"},
		},
		{
			Name:          "Speed Force Cardio",
			Description:   "Run like The Flash with this high-intensity interval training session.",
			Difficulty:    entities.DifficultyIntermediate,
			Duration:      30,
			WorkoutType:   "Cardio",
			TargetMuscles: []string{"legs", "core", "cardiovascular"},
		},
		{
			Name:          "Avenger Core Blast",
			Description:   "Core stability workout inspired by Black Widow's agility training.",
			Difficulty:    entities.DifficultyBeginner,
			Duration:      20,
			WorkoutType:   "Core",
			TargetMuscles: []string{"abs", "obliques", "lower back"},
		},
		{
			Name:          "Amazon Warrior Workout",
			Description:   "Train like Wonder Woman with this full-body functional fitness routine.",
			Difficulty:    entities.DifficultyIntermediate,
			Duration:      45,
			WorkoutType:   "Functional",
			TargetMuscles: []string{"full body", "core", "legs"},
		},
		{
			Name:          "Atlantean Swimming Program",
			Description:   "Aquaman-approved swimming workout to build endurance and strength.",
			Difficulty:    entities.DifficultyBeginner,
			Duration:      40,
			WorkoutType:   "Swimming",
			TargetMuscles: []string{"shoulders", "back", "arms", "legs"},
		},
		{
			Name:          "Dark Knight Combat Training",
			Description:   "Batman's martial arts inspired workout combining strength and agility.",
			Difficulty:    entities.DifficultyAdvanced,
			Duration:      75,
			WorkoutType:   "Martial Arts",
			TargetMuscles: []string{"full body", "core", "reflexes"},
		},
	}
}
