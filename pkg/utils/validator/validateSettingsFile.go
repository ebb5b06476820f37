package validator

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/parser"
)

// ValidateSettingsFile picks the parser for a settings file from its extension.
func (v *ValidatorOptions) ValidateSettingsFile(path string) (parser.ParserType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if pt, ok := v.settingsFormats[ext]; ok {
		return pt, nil
	}

	exts := make([]string, 0, len(v.settingsFormats))
	for e := range v.settingsFormats {
		exts = append(exts, e)
	}
	sort.Strings(exts)

	return parser.Unknown, errors.ErrUnsupportedConfigFormat{Path: path, Extensions: exts}
}
