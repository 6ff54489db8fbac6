package ephem

import (
	"fmt"
	"strconv"
	"strings"
)

// TargetID is a NAIF SPICE ID for a body.
type TargetID int

// NAIF SPICE IDs for the bodies a forecast covers.
// Sourced from https://naif.jpl.nasa.gov/pub/naif/toolkit_docs/C/req/naif_ids.html
const (
	NAIFSun     TargetID = 10
	NAIFMercury TargetID = 199
	NAIFVenus   TargetID = 299
	NAIFMoon    TargetID = 301
	NAIFEarth   TargetID = 399
	NAIFMars    TargetID = 499
	NAIFJupiter TargetID = 599
	NAIFSaturn  TargetID = 699
	NAIFUranus  TargetID = 799
	NAIFNeptune TargetID = 899
	NAIFPluto   TargetID = 999
)

// TargetInfo contains mapping information for a body.
type TargetInfo struct {
	Name    string
	NAIFID  TargetID
	Aliases []string
}

// Targets is the list of known bodies.
var Targets = []TargetInfo{
	{Name: "Sun", NAIFID: NAIFSun, Aliases: []string{"Sol"}},
	{Name: "Mercury", NAIFID: NAIFMercury},
	{Name: "Venus", NAIFID: NAIFVenus},
	{Name: "Moon", NAIFID: NAIFMoon, Aliases: []string{"Luna"}},
	{Name: "Earth", NAIFID: NAIFEarth},
	{Name: "Mars", NAIFID: NAIFMars},
	{Name: "Jupiter", NAIFID: NAIFJupiter},
	{Name: "Saturn", NAIFID: NAIFSaturn},
	{Name: "Uranus", NAIFID: NAIFUranus},
	{Name: "Neptune", NAIFID: NAIFNeptune},
	{Name: "Pluto", NAIFID: NAIFPluto},
}

// TargetsByNAIF maps NAIF ID to target info.
var TargetsByNAIF = func() map[TargetID]TargetInfo {
	m := make(map[TargetID]TargetInfo, len(Targets))
	for _, t := range Targets {
		m[t.NAIFID] = t
	}
	return m
}()

// TargetsByName maps lowercase names and aliases to target info.
var TargetsByName = func() map[string]TargetInfo {
	m := make(map[string]TargetInfo)
	for _, t := range Targets {
		m[strings.ToLower(t.Name)] = t
		for _, alias := range t.Aliases {
			m[strings.ToLower(alias)] = t
		}
	}
	return m
}()

// String returns the body name, or the numeric ID for unknown targets.
func (id TargetID) String() string {
	if t, ok := TargetsByNAIF[id]; ok {
		return t.Name
	}
	return strconv.Itoa(int(id))
}

// GetTargetByNAIF returns target info for a NAIF ID.
func GetTargetByNAIF(id TargetID) (TargetInfo, bool) {
	t, ok := TargetsByNAIF[id]
	return t, ok
}

// GetTargetByName returns target info for a body name (case-insensitive).
func GetTargetByName(name string) (TargetInfo, bool) {
	t, ok := TargetsByName[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// ParseTargetID accepts a numeric NAIF ID or a known body name.
func ParseTargetID(s string) (TargetID, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return TargetID(n), nil
	}
	if t, ok := GetTargetByName(s); ok {
		return t.NAIFID, nil
	}
	return 0, fmt.Errorf("unknown target %q", s)
}
