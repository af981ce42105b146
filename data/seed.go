// Package data holds the static records the hub is seeded with at start-up.
// File: data/seed.go
package data

import (
	"fmt"

	"go-ultimate-hub/models"
)

// Dataset is the full set of seed collections.
type Dataset struct {
	Users           []models.User
	Venues          []models.Venue
	Organizations   []models.Organization
	Events          []models.Event
	CoachingCenters []models.CoachingCenter
	Children        []models.Child
	Sessions        []models.Session
	Assessments     []models.Assessment
	HomeVisits      []models.HomeVisit
	Alerts          []models.Alert
	Teams           []models.Team
	Players         []models.PlayerStat
	// PlaceholderImages are the static album photos per event.
	PlaceholderImages map[models.EventID][]models.Image
}

var d = models.MustDate

// Seed builds a fresh copy of the seed data on every call, so callers may mutate it freely.
func Seed() Dataset {
	return Dataset{
		Users:             users(),
		Venues:            venues(),
		Organizations:     organizations(),
		Events:            events(),
		CoachingCenters:   coachingCenters(),
		Children:          children(),
		Sessions:          sessions(),
		Assessments:       assessments(),
		HomeVisits:        homeVisits(),
		Alerts:            alerts(),
		Teams:             teams(),
		Players:           players(),
		PlaceholderImages: placeholderImages(),
	}
}

func users() []models.User {
	return []models.User{
		{ID: "u1", Name: "Asha Menon", Email: "asha@ultimatehub.org", Profile: models.AdminProfile{}},
		{ID: "u2", Name: "Omar Qureshi", Email: "omar@dua.org", Profile: models.OrganizerProfile{
			OrgName: "Delhi Ultimate Association",
			Events:  []models.EventID{1, 2},
		}},
		{ID: "u3", Name: "Jane Doe", Email: "jane@example.com", Profile: models.ParticipantProfile{
			Phone:            "+91 98100 00003",
			Location:         "New Delhi",
			RegisteredEvents: []models.EventID{1, 3},
			QRCode:           "u3",
		}},
		{ID: "u4", Name: "Carlos Mendes", Email: "carlos@ultimatehub.org", Profile: models.CoachProfile{
			Communities: []string{"Sundar Nagar", "Govindpuri"},
			Sessions:    []models.SessionID{"s1", "s2", "s3"},
		}},
		{ID: "u5", Name: "Ravi Kumar", Email: "ravi@example.com", Profile: models.ParticipantProfile{
			Phone:            "+91 98100 00005",
			Location:         "Gurugram",
			RegisteredEvents: []models.EventID{1, 2},
			QRCode:           "u5",
		}},
		{ID: "u6", Name: "Priya Raman", Email: "priya@yultimate.org", Profile: models.OrganizerProfile{
			OrgName: "Y-Ultimate",
			Events:  []models.EventID{3, 4},
		}},
	}
}

func venues() []models.Venue {
	return []models.Venue{
		{ID: "v1", Name: "Nehru Park Grounds", Location: "Chanakyapuri, New Delhi", Lat: 28.5797, Lng: 77.1904},
		{ID: "v2", Name: "Jawaharlal Nehru Stadium", Location: "Lodhi Road, New Delhi", Lat: 28.5829, Lng: 77.2344},
		{ID: "v3", Name: "Cubbon Park", Location: "Bengaluru", Lat: 12.9763, Lng: 77.5929},
	}
}

func organizations() []models.Organization {
	return []models.Organization{
		{ID: "o1", Name: "Delhi Ultimate Association", Organizers: []models.UserID{"u2"}},
		{ID: "o2", Name: "Y-Ultimate", Organizers: []models.UserID{"u6"}},
	}
}

func events() []models.Event {
	return []models.Event{
		{
			ID: 1, Name: "Delhi Ultimate Open", Date: d("2024-11-16"), Type: models.EventTournament,
			Description:    "Two-day open division tournament with sixteen teams.",
			VenueID:        "v2",
			OrganizationID: "o1",
			Participants:   []models.UserID{"u3", "u5"},
			Winners:        &models.Winners{First: "Delhi Disc Dogs", Second: "Mumbai Flyers", Third: "Chennai Chargers"},
			Highlights:     "Sudden-death final decided on universe point.",
		},
		{
			ID: 2, Name: "Spirit of the Game Workshop", Date: d("2027-02-08"), Type: models.EventWorkshop,
			Description:    "Self-refereeing and spirit circles for new captains.",
			VenueID:        "v1",
			OrganizationID: "o1",
			Participants:   []models.UserID{"u5"},
		},
		{
			ID: 3, Name: "Community Hat Meetup", Date: d("2027-03-21"), Type: models.EventMeetup,
			Description:    "Mixed hat games open to every skill level.",
			VenueID:        "v3",
			OrganizationID: "o2",
			Participants:   []models.UserID{"u3"},
		},
		{
			ID: 4, Name: "Bengaluru Beach Classic", Date: d("2024-08-10"), Type: models.EventTournament,
			Description:    "Beach format, five-a-side.",
			VenueID:        "v3",
			OrganizationID: "o2",
			Participants:   []models.UserID{},
			Winners:        &models.Winners{First: "Bengaluru Breeze", Second: "Delhi Disc Dogs", Third: "Mumbai Flyers"},
		},
	}
}

func coachingCenters() []models.CoachingCenter {
	return []models.CoachingCenter{
		{
			ID: "cc1", Name: "Sundar Nagar Youth Center", Specialty: "Beginner Fundamentals",
			Location: "Sundar Nagar, New Delhi", Lat: 28.6011, Lng: 77.2420,
			Participants: []models.UserID{"u3"},
			Description:  "Throwing, catching and spirit basics for first-time players.",
			Fee:          500, Schedule: "Sat & Sun, 7:00-9:00",
		},
		{
			ID: "cc2", Name: "Govindpuri Throwing Academy", Specialty: "Advanced Throws",
			Location: "Govindpuri, New Delhi", Lat: 28.5355, Lng: 77.2635,
			Participants: []models.UserID{},
			Description:  "Hammers, scoobers and break-mark forehands.",
			Fee:          1200, Schedule: "Tue & Thu, 17:00-19:00",
		},
	}
}

func children() []models.Child {
	return []models.Child{
		{ID: "c1", Name: "Aarav", Gender: "M", Age: 11, Community: "Sundar Nagar", School: "GBSSS Sundar Nagar"},
		{ID: "c2", Name: "Diya", Gender: "F", Age: 12, Community: "Sundar Nagar", School: "GGSSS Sundar Nagar"},
		{ID: "c3", Name: "Kabir", Gender: "M", Age: 10, Community: "Sundar Nagar", School: "GBSSS Sundar Nagar"},
		{ID: "c4", Name: "Meera", Gender: "F", Age: 13, Community: "Govindpuri", School: "SKV Govindpuri"},
		{ID: "c5", Name: "Rohan", Gender: "M", Age: 12, Community: "Govindpuri", School: "RPVV Govindpuri"},
		{ID: "c6", Name: "Sara", Gender: "F", Age: 11, Community: "Govindpuri", School: "SKV Govindpuri"},
		{ID: "c7", Name: "Imran", Gender: "M", Age: 14, Community: "Okhla", School: "GBSSS Okhla"},
	}
}

func sessions() []models.Session {
	return []models.Session{
		{ID: "s1", Date: d("2024-10-01"), Community: "Sundar Nagar", Coach: "Carlos Mendes", CoachID: "u4",
			Participants: []models.ChildID{"c1", "c2"}, Status: models.SessionCompleted},
		{ID: "s2", Date: d("2024-10-08"), Community: "Govindpuri", Coach: "Carlos Mendes", CoachID: "u4",
			Participants: []models.ChildID{"c4", "c5", "c6"}, Status: models.SessionCompleted},
		{ID: "s3", Date: d("2027-01-10"), Community: "Sundar Nagar", Coach: "Carlos Mendes", CoachID: "u4",
			Participants: []models.ChildID{}, Status: models.SessionUpcoming},
		{ID: "s4", Date: d("2024-10-05"), Community: "Okhla", Coach: "Meera Singh",
			Participants: []models.ChildID{"c7"}, Status: models.SessionCompleted},
	}
}

func assessments() []models.Assessment {
	return []models.Assessment{
		{ID: "a1", ChildID: "c1", Date: d("2024-06-01"), Type: models.AssessmentBaseline,
			Score: models.Score{Teamwork: 4, Confidence: 3, Communication: 5}},
		{ID: "a2", ChildID: "c1", Date: d("2024-12-01"), Type: models.AssessmentEndline,
			Score: models.Score{Teamwork: 7, Confidence: 6, Communication: 8}},
		{ID: "a3", ChildID: "c4", Date: d("2024-06-03"), Type: models.AssessmentBaseline,
			Score: models.Score{Teamwork: 5, Confidence: 5, Communication: 4}},
	}
}

func homeVisits() []models.HomeVisit {
	return []models.HomeVisit{
		{ID: "hv1", ChildID: "c1", Date: d("2024-09-20"), Notes: "Parents supportive; asked about weekend sessions."},
		{ID: "hv2", ChildID: "c4", Date: d("2024-09-22"), Notes: "Needs shoes before the monsoon season."},
	}
}

func alerts() []models.Alert {
	return []models.Alert{
		{ID: "al1", ChildID: "c2", Severity: models.AlertMedium, Message: "Missed three consecutive sessions.", Date: d("2024-10-15")},
		{ID: "al2", ChildID: "c5", Severity: models.AlertHigh, Message: "Reported a knee injury at school.", Date: d("2024-10-18")},
	}
}

func teams() []models.Team {
	return []models.Team{
		{ID: "t1", Name: "Delhi Disc Dogs", Wins: 8, Losses: 2, Points: 24, SpiritScore: 14.2},
		{ID: "t2", Name: "Mumbai Flyers", Wins: 7, Losses: 3, Points: 21, SpiritScore: 12.8},
		{ID: "t3", Name: "Bengaluru Breeze", Wins: 5, Losses: 5, Points: 15, SpiritScore: 13.5},
		{ID: "t4", Name: "Chennai Chargers", Wins: 7, Losses: 3, Points: 21, SpiritScore: 11.9},
	}
}

func players() []models.PlayerStat {
	return []models.PlayerStat{
		{ID: "p1", Name: "Anika Shah", TeamID: "t1", Goals: 21, Assists: 14, Blocks: 6},
		{ID: "p2", Name: "Dev Patel", TeamID: "t2", Goals: 17, Assists: 22, Blocks: 4},
		{ID: "p3", Name: "Lakshmi Iyer", TeamID: "t3", Goals: 12, Assists: 9, Blocks: 15},
		{ID: "p4", Name: "Arjun Nair", TeamID: "t4", Goals: 17, Assists: 8, Blocks: 9},
		{ID: "p5", Name: "Zoya Khan", TeamID: "t1", Goals: 9, Assists: 19, Blocks: 11},
	}
}

func placeholderImages() map[models.EventID][]models.Image {
	out := make(map[models.EventID][]models.Image)
	for _, e := range events() {
		for i := 1; i <= 3; i++ {
			out[e.ID] = append(out[e.ID], models.Image{
				ID:         models.ImageID(fmt.Sprintf("ph-%d-%d", e.ID, i)),
				EventID:    e.ID,
				URL:        fmt.Sprintf("/static/gallery/event-%d-%d.jpg", e.ID, i),
				Caption:    fmt.Sprintf("%s #%d", e.Name, i),
				UploadedAt: e.Date,
			})
		}
	}
	return out
}
