// Package roles holds the themed professions a parsed resume can be converted into.
// Role data is stored as JSON and embedded at compile time.
package roles

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed roles.json
var rolesFile []byte

// Role keys.
const (
	CoconutClimber     = "coconut-climber"
	PaniPuriSeller     = "pani-puri-seller"
	ToddyTapper        = "toddy-tapper"
	AutoRickshawDriver = "auto-rickshaw-driver"
)

// DefaultKey is used when a caller asks for theme data of an unknown role.
const DefaultKey = AutoRickshawDriver

// Role is one themed profession with its vocabulary.
type Role struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`

	// ThemeTitle, Nickname and Summary seed the conversion prompt.
	ThemeTitle string `json:"themeTitle"`
	Nickname   string `json:"nickname"`
	Summary    string `json:"summary"`

	// Greeting and Closing frame the cold mail.
	Greeting string `json:"greeting"`
	Closing  string `json:"closing"`

	TechMappings        map[string]string `json:"techMappings"`
	SkillMappings       map[string]string `json:"skillMappings"`
	ProjectMappings     map[string]string `json:"projectMappings"`
	AchievementMappings map[string]string `json:"achievementMappings"`
	SoftSkillMappings   map[string]string `json:"softSkillMappings"`
	CompanyTypeMappings map[string]string `json:"companyTypeMappings"`
	GenericTechMappings map[string]string `json:"genericTechMappings"`
	ToneInstructions    []string          `json:"toneInstructions"`
}

// Info is the public listing of a role.
type Info struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// UnknownRoleError is returned for a key that names no role.
type UnknownRoleError struct {
	Key string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role %q (valid: %s)", e.Key, strings.Join(Keys(), ", "))
}

var (
	loadOnce sync.Once
	ordered  []Role
	byKey    map[string]Role
)

func load() {
	loadOnce.Do(func() {
		if err := json.Unmarshal(rolesFile, &ordered); err != nil {
			panic(fmt.Sprintf("failed to parse embedded roles: %v", err))
		}
		byKey = make(map[string]Role, len(ordered))
		for _, r := range ordered {
			byKey[r.Key] = r
		}
	})
}

// All returns every role in listing order.
func All() []Role {
	load()
	out := make([]Role, len(ordered))
	copy(out, ordered)
	return out
}

// Infos returns the public listing of every role.
func Infos() []Info {
	load()
	out := make([]Info, 0, len(ordered))
	for _, r := range ordered {
		out = append(out, Info{Key: r.Key, Title: r.Title, Description: r.Description, Color: r.Color})
	}
	return out
}

// Keys returns every role key in listing order.
func Keys() []string {
	load()
	keys := make([]string, 0, len(ordered))
	for _, r := range ordered {
		keys = append(keys, r.Key)
	}
	return keys
}

// Get returns the role for key.
func Get(key string) (Role, error) {
	load()
	r, ok := byKey[key]
	if !ok {
		return Role{}, &UnknownRoleError{Key: key}
	}
	return r, nil
}

// GetOrDefault returns the role for key, or the DefaultKey role.
func GetOrDefault(key string) Role {
	if r, err := Get(key); err == nil {
		return r
	}
	r, _ := Get(DefaultKey)
	return r
}

// Valid reports whether key names a role.
func Valid(key string) bool {
	load()
	_, ok := byKey[key]
	return ok
}

// MapTerm translates a technical term into the role's vocabulary.
// Skill mappings win over generic tech mappings, which win over project mappings.
// Unknown terms come back unchanged.
func (r Role) MapTerm(term string) string {
	lower := strings.ToLower(strings.TrimSpace(term))
	for _, table := range []map[string]string{r.SkillMappings, r.GenericTechMappings, r.ProjectMappings} {
		if mapped, ok := table[lower]; ok {
			return mapped
		}
	}
	return term
}

// TechMappingLines renders the tech mappings as "- Tech -> Themed" lines sorted by tech name.
func (r Role) TechMappingLines() []string {
	techs := make([]string, 0, len(r.TechMappings))
	for tech := range r.TechMappings {
		techs = append(techs, tech)
	}
	sort.Strings(techs)

	lines := make([]string, 0, len(techs))
	for _, tech := range techs {
		lines = append(lines, fmt.Sprintf("- %s -> %s", tech, r.TechMappings[tech]))
	}
	return lines
}

// NicknameFor builds the "First 'Nick' Rest" display name for a full name.
func (r Role) NicknameFor(fullName string) string {
	parts := strings.Fields(fullName)
	first, rest := "Professional", "Expert"
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		rest = strings.Join(parts[1:], " ")
	}
	return fmt.Sprintf("%s '%s' %s", first, r.Nickname, rest)
}
