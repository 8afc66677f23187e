package repository

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mergington/activities/internal/domain/model"
)

// DefaultSeed returns the built-in Mergington High activity catalog.
func DefaultSeed() []*model.Activity {
	return []*model.Activity{
		model.NewActivity(
			"Chess Club",
			"Learn strategies and compete in chess tournaments",
			"Fridays, 3:30 PM - 5:00 PM",
			12,
			"michael@mergington.edu", "daniel@mergington.edu",
		),
		model.NewActivity(
			"Programming Class",
			"Learn programming fundamentals and build software projects",
			"Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			20,
			"emma@mergington.edu", "sophia@mergington.edu",
		),
		model.NewActivity(
			"Gym Class",
			"Physical education and sports activities",
			"Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			30,
			"john@mergington.edu", "olivia@mergington.edu",
		),
		model.NewActivity(
			"Basketball Team",
			"Competitive basketball team for interscholastic play",
			"Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			15,
			"james@mergington.edu",
		),
		model.NewActivity(
			"Track and Field",
			"Running, jumping, and throwing events for all skill levels",
			"Tuesdays and Thursdays, 3:45 PM - 5:00 PM",
			25,
			"alex@mergington.edu", "maya@mergington.edu",
		),
		model.NewActivity(
			"Drama Club",
			"Perform in school plays and develop theatrical skills",
			"Wednesdays, 3:30 PM - 5:00 PM",
			20,
			"lucas@mergington.edu",
		),
		model.NewActivity(
			"Art Studio",
			"Explore painting, drawing, and mixed media techniques",
			"Mondays, 3:30 PM - 4:45 PM",
			18,
			"isabella@mergington.edu", "noah@mergington.edu",
		),
		model.NewActivity(
			"Debate Team",
			"Develop argumentation and public speaking skills through competitive debate",
			"Thursdays, 4:00 PM - 5:30 PM",
			14,
			"ava@mergington.edu",
		),
		model.NewActivity(
			"Science Club",
			"Conduct experiments and explore scientific concepts through hands-on projects",
			"Fridays, 3:30 PM - 4:45 PM",
			16,
			"ethan@mergington.edu", "charlotte@mergington.edu",
		),
	}
}

// seedEntry mirrors one activity in a YAML seed file.
type seedEntry struct {
	Description     string   `koanf:"description"`
	Schedule        string   `koanf:"schedule"`
	MaxParticipants int      `koanf:"max_participants"`
	Participants    []string `koanf:"participants"`
}

// LoadSeedFile reads a YAML catalog of the form:
//
//	activities:
//	  Chess Club:
//	    description: ...
//	    schedule: ...
//	    max_participants: 12
//	    participants: [a@x.edu, b@x.edu]
func LoadSeedFile(_ context.Context, path string) ([]*model.Activity, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	var raw map[string]seedEntry
	if err := k.UnmarshalWithConf("activities", &raw, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no activities defined in %s", ErrInvalidSeed, path)
	}

	seed := make([]*model.Activity, 0, len(raw))
	for name, e := range raw {
		if e.MaxParticipants <= 0 {
			return nil, fmt.Errorf("%w: %q needs a positive max_participants", ErrInvalidSeed, name)
		}
		seed = append(seed, model.NewActivity(name, e.Description, e.Schedule, e.MaxParticipants, e.Participants...))
	}
	return seed, nil
}
