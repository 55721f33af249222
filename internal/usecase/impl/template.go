package impl

import (
	"strings"

	"promopush/internal/domain/constants"
	"promopush/internal/domain/entity"
)

// personalize replaces every occurrence of the name placeholder in template.
// A template without the placeholder is returned unchanged.
func personalize(template string, recipient *entity.Recipient) string {
	name := strings.TrimSpace(recipient.DisplayName)
	if name == "" {
		name = recipient.Email
	}

	return strings.ReplaceAll(template, constants.NamePlaceholder, name)
}
