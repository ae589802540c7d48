// file: internals/features/templates/registry/registry_test.go
package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsFourTemplates(t *testing.T) {
	all := All()
	require.Len(t, all, 4)

	ids := map[TemplateID]bool{}
	for _, tpl := range all {
		ids[tpl.ID] = true
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Description)
		assert.NotEmpty(t, tpl.Sections)
		assert.NotEmpty(t, tpl.ColorScheme.Primary)
		assert.NotEmpty(t, tpl.ColorScheme.Secondary)
		assert.NotEmpty(t, tpl.ColorScheme.Accent)
	}
	assert.True(t, ids[TemplateDeveloper])
	assert.True(t, ids[TemplateDesigner])
	assert.True(t, ids[TemplateFinance])
	assert.True(t, ids[TemplateProfessional])
}

func TestAllReturnsACopy(t *testing.T) {
	first := All()
	first[0].Name = "mutated"

	again := All()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		id    TemplateID
		found bool
	}{
		{"developer", TemplateDeveloper, true},
		{"designer", TemplateDesigner, true},
		{"finance", TemplateFinance, true},
		{"professional", TemplateProfessional, true},
		{"unknown id", TemplateID("minimalist"), false},
		{"empty id", TemplateID(""), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tpl, ok := Lookup(tc.id)
			assert.Equal(t, tc.found, ok)
			if tc.found {
				assert.Equal(t, tc.id, tpl.ID)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(TemplateFinance))
	assert.False(t, IsValid(TemplateID("FINANCE"))) // ids are case-sensitive
	assert.False(t, IsValid(TemplateID("blog")))
}

func TestDefaultIsDeveloper(t *testing.T) {
	def := Default()
	assert.Equal(t, TemplateDeveloper, def.ID)
	assert.Equal(t, "#3B82F6", def.ColorScheme.Primary)
}

func TestColorSchemesMatchCatalog(t *testing.T) {
	tests := []struct {
		id      TemplateID
		primary string
		accent  string
	}{
		{TemplateDeveloper, "#3B82F6", "#10B981"},
		{TemplateDesigner, "#8B5CF6", "#F59E0B"},
		{TemplateFinance, "#1E40AF", "#059669"},
		{TemplateProfessional, "#DC2626", "#7C3AED"},
	}
	for _, tc := range tests {
		t.Run(string(tc.id), func(t *testing.T) {
			tpl, ok := Lookup(tc.id)
			require.True(t, ok)
			assert.Equal(t, tc.primary, tpl.ColorScheme.Primary)
			assert.Equal(t, tc.accent, tpl.ColorScheme.Accent)
		})
	}
}
