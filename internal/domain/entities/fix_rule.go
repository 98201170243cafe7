package entities

import (
	"fmt"
	"strings"
)

// FixRule is a single class of style violation that the fixer knows how to
// correct automatically.
type FixRule struct {
	Code        string // violation code passed to the fixer (e.g. "E225")
	Description string // human-readable text used in commit messages
}

// String returns the commit-message form of the rule: "<code> - <description>".
func (r FixRule) String() string {
	return fmt.Sprintf("%s - %s", r.Code, r.Description)
}

// DefaultCatalog returns the ordered list of rules applied by a run. The
// order defines both the sequence of fix passes and the sequence of commits.
func DefaultCatalog() []FixRule {
	return []FixRule{
		{Code: "E101", Description: "Reindent all lines"},
		{Code: "E11", Description: "Fix indentation"},
		{Code: "E121", Description: "Fix indentation to be a multiple of four"},
		{Code: "E122", Description: "Add absent indentation for hanging indentation"},
		{Code: "E123", Description: "Align closing bracket to match opening bracket"},
		{Code: "E124", Description: "Align closing bracket to match visual indentation"},
		{Code: "E125", Description: "Indent to distinguish line from next logical line"},
		{Code: "E126", Description: "Fix over-indented hanging indentation"},
		{Code: "E127", Description: "Fix visual indentation"},
		{Code: "E129", Description: "Fix visual indentation"},
		{Code: "E131", Description: "Fix hanging indent for unaligned continuation line"},
		{Code: "E133", Description: "Fix missing indentation for closing bracket"},
		{Code: "E20", Description: "Remove extraneous whitespace"},
		{Code: "E211", Description: "Remove extraneous whitespace"},
		{Code: "E22", Description: "Fix extraneous whitespace around keywords"},
		{Code: "E224", Description: "Remove extraneous whitespace around operator"},
		{Code: "E225", Description: "Fix missing whitespace around operator"},
		{Code: "E226", Description: "Fix missing whitespace around arithmetic operator"},
		{Code: "E227", Description: "Fix missing whitespace around bitwise/shift operator"},
		{Code: "E228", Description: "Fix missing whitespace around modulo operator"},
		{Code: "E231", Description: "Add missing whitespace"},
		{Code: "E241", Description: "Fix extraneous whitespace around keywords"},
		{Code: "E242", Description: "Remove extraneous whitespace around operator"},
		{Code: "E251", Description: `Remove whitespace around parameter "=" sign`},
		{Code: "E252", Description: "Missing whitespace around parameter equals"},
		{Code: "E26", Description: "Fix spacing after comment hash for inline comments"},
		{Code: "E265", Description: "Fix spacing after comment hash for block comments"},
		{Code: "E266", Description: `Fix too many leading "#" for block comments`},
		{Code: "E27", Description: "Fix extraneous whitespace around keywords"},
		{Code: "E301", Description: "Add missing blank line"},
		{Code: "E302", Description: "Add missing 2 blank lines"},
		{Code: "E303", Description: "Remove extra blank lines"},
		{Code: "E304", Description: "Remove blank line following function decorator"},
		{Code: "E305", Description: "Expected 2 blank lines after end of function or class"},
		{Code: "E306", Description: "Expected 1 blank line before a nested definition"},
		{Code: "E401", Description: "Put imports on separate lines"},
		{Code: "E402", Description: "Fix module level import not at top of file"},
		{Code: "E502", Description: "Remove extraneous escape of newline"},
		{Code: "E701", Description: "Put colon-separated compound statement on separate lines"},
		{Code: "E70", Description: "Put semicolon-separated compound statement on separate lines"},
		{Code: "E711", Description: "Fix comparison with None"},
		{Code: "E712", Description: "Fix comparison with boolean"},
		{Code: "E713", Description: `Use "not in" for test for membership`},
		{Code: "E714", Description: `Use "is not" test for object identity`},
		{Code: "E721", Description: `Use "isinstance()" instead of comparing types directly`},
		{Code: "E722", Description: "Fix bare except"},
		{Code: "E731", Description: "Use a def when use do not assign a lambda expression"},
		{Code: "W291", Description: "Remove trailing whitespace"},
		{Code: "W292", Description: "Add a single newline at the end of the file"},
		{Code: "W293", Description: "Remove trailing whitespace on blank line"},
		{Code: "W391", Description: "Remove trailing blank lines"},
		{Code: "W504", Description: "Fix line break after binary operator"},
		{Code: "W601", Description: `Use "in" rather than "has_key()"`},
		{Code: "W602", Description: "Fix deprecated form of raising exception"},
		{Code: "W603", Description: `Use "!=" instead of "<>"`},
		{Code: "W604", Description: `Use "repr()" instead of backticks`},
		{Code: "W605", Description: `Fix invalid escape sequence "x"`},
		{Code: "W690", Description: "Fix various deprecated code (via lib2to3)"},
	}
}

// ExcludedRules lists the fixes that are deliberately never run as an
// automatic pass.
func ExcludedRules() []FixRule {
	return []FixRule{
		{Code: "E128", Description: "Fix visual indentation"},
		{Code: "E501", Description: "Try to make lines fit within --max-line-length characters"},
		{Code: "W503", Description: "Fix line break before binary operator"},
	}
}

// RuleCodes returns the codes of the given rules, in order.
func RuleCodes(rules []FixRule) []string {
	codes := make([]string, 0, len(rules))
	for _, rule := range rules {
		codes = append(codes, rule.Code)
	}
	return codes
}

// FilterCatalog narrows catalog to the codes in only (when non-empty) and
// drops the codes in exclude. Catalog order is preserved. A code that is not
// part of the catalog yields ErrUnknownRule.
func FilterCatalog(catalog []FixRule, only, exclude []string) ([]FixRule, error) {
	known := make(map[string]bool, len(catalog))
	for _, rule := range catalog {
		known[rule.Code] = true
	}

	onlySet, err := codeSet(known, only)
	if err != nil {
		return nil, err
	}
	excludeSet, err := codeSet(known, exclude)
	if err != nil {
		return nil, err
	}

	result := make([]FixRule, 0, len(catalog))
	for _, rule := range catalog {
		if len(onlySet) > 0 && !onlySet[rule.Code] {
			continue
		}
		if excludeSet[rule.Code] {
			continue
		}
		result = append(result, rule)
	}
	return result, nil
}

func codeSet(known map[string]bool, codes []string) (map[string]bool, error) {
	set := make(map[string]bool, len(codes))
	for _, raw := range codes {
		code := strings.ToUpper(strings.TrimSpace(raw))
		if code == "" {
			continue
		}
		if !known[code] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, raw)
		}
		set[code] = true
	}
	return set, nil
}
