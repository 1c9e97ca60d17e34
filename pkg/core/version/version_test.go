package version

import (
	"strconv"
	"strings"
	"testing"
)

func TestReleaseVersions(t *testing.T) {
	for name, v := range map[string]string{"Library": Library, "CLI": CLI} {
		parts := strings.Split(v, ".")
		if len(parts) != 3 {
			t.Errorf("%s = %q, want MAJOR.MINOR.PATCH", name, v)
			continue
		}
		for _, p := range parts {
			if _, err := strconv.ParseUint(p, 10, 32); err != nil {
				t.Errorf("%s = %q: component %q is not a number", name, v, p)
			}
		}
	}
}

// The timeline store writes TimelineSchema into PRAGMA user_version; zero
// would be indistinguishable from a fresh database.
func TestTimelineSchema(t *testing.T) {
	if TimelineSchema < 1 {
		t.Errorf("TimelineSchema = %d, want >= 1", TimelineSchema)
	}
}

func TestString(t *testing.T) {
	s := String()
	for _, want := range []string{"gregor " + CLI, "datetime " + Library, "commit " + Commit} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
