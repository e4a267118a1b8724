package reminders

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type ruleFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Type        string   `yaml:"type"`
	Message     string   `yaml:"message"`
	Hour        int      `yaml:"hour"`
	MinuteStart int      `yaml:"minute_start"`
	MinuteEnd   int      `yaml:"minute_end"`
	Weekdays    []string `yaml:"weekdays"`
}

// LoadRules reads a YAML rule table from path.
func LoadRules(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("read reminder rules: %w", err)
	}
	return ParseRules(data)
}

// ParseRules decodes a YAML rule table of the form
//
//	rules:
//	  - type: timesheet
//	    message: Submit your timesheet
//	    hour: 16
//	    minute_start: 0
//	    minute_end: 5
//	    weekdays: [friday]
func ParseRules(data []byte) (RuleSet, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return RuleSet{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}

	rules := make([]Rule, 0, len(file.Rules))
	for _, entry := range file.Rules {
		days, err := parseWeekdays(entry.Weekdays)
		if err != nil {
			return RuleSet{}, err
		}
		rules = append(rules, Rule{
			Type:        Type(strings.TrimSpace(entry.Type)),
			Message:     entry.Message,
			Hour:        entry.Hour,
			MinuteStart: entry.MinuteStart,
			MinuteEnd:   entry.MinuteEnd,
			Weekdays:    days,
		})
	}
	return NewRuleSet(rules...)
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	var out []time.Weekday
	for _, name := range names {
		day, ok := weekdayByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidRule, name)
		}
		out = append(out, day)
	}
	return out, nil
}

func weekdayByName(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, true
		}
	}
	return 0, false
}
