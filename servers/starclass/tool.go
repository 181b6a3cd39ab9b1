package starclass

import (
	"context"
	"fmt"
	"sort"
	"strings"

	mcp "github.com/starbeam-labs/github-star-mcp"
)

type starEntry struct {
	class       string
	temperature string
	luminosity  string
	description string
}

// catalog is the fixed star database served by get_star_info.
var catalog = map[string]starEntry{
	"Sun": {
		class:       "G-type main sequence",
		temperature: "5778K",
		luminosity:  "1 solar luminosity",
		description: "The central star of our solar system, a typical yellow dwarf",
	},
	"Sirius": {
		class:       "A-type main sequence",
		temperature: "9940K",
		luminosity:  "25 solar luminosities",
		description: "The brightest star in the night sky, a binary system",
	},
	"Betelgeuse": {
		class:       "M-type supergiant",
		temperature: "3500K",
		luminosity:  "100000 solar luminosities",
		description: "The red supergiant in Orion, one of the largest known stars",
	},
	"Vega": {
		class:       "A-type main sequence",
		temperature: "9602K",
		luminosity:  "40 solar luminosities",
		description: "The brightest star in Lyra, once the pole star",
	},
}

// sunTemperature is the Sun's surface temperature in kelvin, the reference for comparisons.
const sunTemperature = 5778.0

var moods = []string{
	"%s is in a great mood today! 😊",
	"%s is feeling a bit tired today... 😴",
	"%s is full of energy today! ⚡",
	"%s is feeling calm today 😌",
	"%s is a little excited today! 🎉",
	"%s is pondering life today... 🤔",
}

func (s *Server) getStarInfo(_ context.Context, args map[string]any) ([]mcp.Content, error) {
	starName, _ := args["star_name"].(string)

	star, ok := catalog[starName]
	if !ok {
		names := make([]string, 0, len(catalog))
		for name := range catalog {
			names = append(names, name)
		}
		sort.Strings(names)
		return textContent(fmt.Sprintf(
			"Sorry, no information about %q in the catalog.\nAvailable stars: %s",
			starName, strings.Join(names, ", "))), nil
	}

	return textContent(fmt.Sprintf(
		"Star: %s\nClass: %s\nTemperature: %s\nLuminosity: %s\nDescription: %s",
		starName, star.class, star.temperature, star.luminosity, star.description)), nil
}

func (s *Server) classifyStar(_ context.Context, args map[string]any) ([]mcp.Content, error) {
	temperature, tempOK := floatArg(args, "temperature")
	luminosity, lumOK := floatArg(args, "luminosity")
	if !tempOK || !lumOK {
		return textContent("Error: temperature and luminosity parameters are required"), nil
	}
	// Zero or negative values would break the Sun comparison ratios below.
	if temperature <= 0 || luminosity <= 0 {
		return textContent("Error: temperature and luminosity must be positive"), nil
	}

	spectral, color := spectralClass(temperature)
	lumClass := luminosityClass(luminosity)

	var b strings.Builder
	fmt.Fprintf(&b, "Star classification:\n")
	fmt.Fprintf(&b, "Temperature: %gK\n", temperature)
	fmt.Fprintf(&b, "Luminosity: %g solar luminosities\n", luminosity)
	fmt.Fprintf(&b, "Spectral class: %s\n", spectral)
	fmt.Fprintf(&b, "Color: %s\n", color)
	fmt.Fprintf(&b, "Type: %s\n", lumClass)

	if temperature > sunTemperature {
		fmt.Fprintf(&b, "\nHotter than the Sun (%.1fx)", temperature/sunTemperature)
	} else {
		fmt.Fprintf(&b, "\nCooler than the Sun (%.1fx)", sunTemperature/temperature)
	}
	if luminosity > 1 {
		fmt.Fprintf(&b, "\nBrighter than the Sun (%.1fx)", luminosity)
	} else {
		fmt.Fprintf(&b, "\nDimmer than the Sun (%.1fx)", 1/luminosity)
	}

	return textContent(b.String()), nil
}

func (s *Server) getMood(_ context.Context, args map[string]any) ([]mcp.Content, error) {
	name, ok := args["name"].(string)
	if !ok || name == "" {
		name = "world"
	}
	mood := moods[s.pick(len(moods))]
	return textContent(fmt.Sprintf(mood, name)), nil
}

func spectralClass(temperature float64) (class, color string) {
	switch {
	case temperature >= 30000:
		return "O", "blue"
	case temperature >= 10000:
		return "B", "blue-white"
	case temperature >= 7500:
		return "A", "white"
	case temperature >= 6000:
		return "F", "yellow-white"
	case temperature >= 5200:
		return "G", "yellow"
	case temperature >= 3700:
		return "K", "orange"
	default:
		return "M", "red"
	}
}

func luminosityClass(luminosity float64) string {
	switch {
	case luminosity >= 10000:
		return "supergiant"
	case luminosity >= 1000:
		return "bright giant"
	case luminosity >= 100:
		return "giant"
	case luminosity >= 0.1:
		return "main sequence"
	default:
		return "white dwarf"
	}
}

func floatArg(args map[string]any, key string) (float64, bool) {
	switch v := args[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func textContent(text string) []mcp.Content {
	return []mcp.Content{{Type: mcp.ContentTypeText, Text: text}}
}
