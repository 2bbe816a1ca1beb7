package access

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/marcelsud/library-api/internal/user"
	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

/* Loader manages the role policy from policy.yaml
 * Provides in-memory lookup for fast access
 */

// Config represents the structure of the policy file
type Config struct {
	Permissions []RuleConfig `yaml:"permissions"`
}

// RuleConfig represents a single permission in the YAML file
type RuleConfig struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Roles       []string `yaml:"roles"`
}

// Loader holds the loaded rules
type Loader struct {
	rules map[Permission]*Rule
}

// NewLoader creates an empty loader; nothing is allowed until a policy is loaded
func NewLoader() *Loader {
	return &Loader{
		rules: make(map[Permission]*Rule),
	}
}

// Default returns a loader with the embedded policy
func Default() (*Loader, error) {
	l := NewLoader()
	if err := l.Parse(defaultPolicy); err != nil {
		return nil, fmt.Errorf("loading embedded policy: %w", err)
	}
	return l, nil
}

// Load reads and parses a policy file
func (l *Loader) Load(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading policy file: %w", err)
	}
	return l.Parse(data)
}

// Parse replaces the rules with the ones in data; on error the loader is left untouched
func (l *Loader) Parse(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing policy YAML: %w", err)
	}

	rules := make(map[Permission]*Rule, len(config.Permissions))
	for _, rc := range config.Permissions {
		rule := &Rule{
			Permission:  Permission(rc.Name),
			Description: rc.Description,
		}
		for _, name := range rc.Roles {
			rule.Roles = append(rule.Roles, user.NewRole(name))
		}

		if err := rule.Validate(); err != nil {
			return fmt.Errorf("validating permission: %w", err)
		}
		if _, dup := rules[rule.Permission]; dup {
			return fmt.Errorf("permission %s defined twice", rule.Permission)
		}
		rules[rule.Permission] = rule
	}

	// A missing permission would silently lock its routes
	for _, p := range Permissions() {
		if _, ok := rules[p]; !ok {
			return fmt.Errorf("permission %s is not defined", p)
		}
	}

	l.rules = rules
	return nil
}

// Allows reports whether role may use permission
func (l *Loader) Allows(p Permission, role user.Role) bool {
	rule, ok := l.rules[p]
	if !ok {
		return false
	}
	return rule.Allows(role)
}

// Get retrieves a rule by its permission
func (l *Loader) Get(p Permission) (*Rule, error) {
	rule, ok := l.rules[p]
	if !ok {
		return nil, fmt.Errorf("permission not found: %s", p)
	}
	return rule, nil
}

// List returns all loaded rules ordered by permission
func (l *Loader) List() []*Rule {
	rules := make([]*Rule, 0, len(l.rules))
	for _, rule := range l.rules {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool { return rules[i].Permission < rules[j].Permission })
	return rules
}
