package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed landmarks.json cities.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// LandmarksJSON returns the default landmark dataset.
func LandmarksJSON() ([]byte, error) {
	return FS.ReadFile("landmarks.json")
}

// CitiesList returns extra city names for autocomplete.
func CitiesList() ([]string, error) {
	return readLines("cities.txt")
}
