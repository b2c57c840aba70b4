package memory

import "activitysignup/internal/domain"

// DefaultCatalog returns the activities the service starts with when no catalog
// database is configured.
func DefaultCatalog() domain.Catalog {
	return domain.Catalog{
		seeded("Chess Club", "Learn strategies and compete in chess tournaments",
			"Fridays, 3:30 PM - 5:00 PM", 12,
			"michael@mergington.edu", "daniel@mergington.edu"),
		seeded("Programming Class", "Learn programming fundamentals and build software projects",
			"Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20,
			"emma@mergington.edu", "sophia@mergington.edu"),
		seeded("Gym Class", "Physical education and sports activities",
			"Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", 30,
			"john@mergington.edu", "olivia@mergington.edu"),
		seeded("Soccer Team", "Join the school soccer team and compete in matches",
			"Tuesdays and Thursdays, 4:00 PM - 5:30 PM", 22,
			"liam@mergington.edu", "noah@mergington.edu"),
		seeded("Basketball Team", "Practice and play basketball with the school team",
			"Wednesdays and Fridays, 3:30 PM - 5:00 PM", 15,
			"ava@mergington.edu", "mia@mergington.edu"),
		seeded("Art Club", "Explore your creativity through painting and drawing",
			"Thursdays, 3:30 PM - 5:00 PM", 15,
			"amelia@mergington.edu", "harper@mergington.edu"),
		seeded("Drama Club", "Act, direct, and produce plays and performances",
			"Mondays and Wednesdays, 4:00 PM - 5:30 PM", 20,
			"ella@mergington.edu", "scarlett@mergington.edu"),
		seeded("Math Club", "Solve challenging problems and participate in math competitions",
			"Tuesdays, 3:30 PM - 4:30 PM", 10,
			"james@mergington.edu", "benjamin@mergington.edu"),
		seeded("Debate Team", "Develop public speaking and argumentation skills",
			"Fridays, 4:00 PM - 5:30 PM", 12,
			"charlotte@mergington.edu", "henry@mergington.edu"),
	}
}

func seeded(name, description, schedule string, maxParticipants int, participants ...string) *domain.Activity {
	a := domain.NewActivity(name, description, schedule, maxParticipants)
	a.Participants = append(a.Participants, participants...)
	return a
}
