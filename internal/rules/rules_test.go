package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchers(t *testing.T) {
	tests := []struct {
		name    string
		matcher Matcher
		input   string
		want    bool
	}{
		{"pattern match", Pattern(`^\.env(\..*)?$`), ".env.production", true},
		{"pattern no match", Pattern(`^\.env(\..*)?$`), "env.go", false},
		{"substring ignores case", Substring("api_key"), "MY_API_KEY.txt", true},
		{"substring no match", Substring("api_key"), "apikey.txt", false},
		{"glob at root", Glob("**/.vscode/settings.json"), ".vscode/settings.json", true},
		{"glob nested", Glob("**/.vscode/settings.json"), "packages/web/.vscode/settings.json", true},
		{"glob other file", Glob("**/.vscode/settings.json"), ".vscode/extensions.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Match(tt.input))
		})
	}
}

func TestGlob_InvalidPatternPanics(t *testing.T) {
	assert.Panics(t, func() { Glob("[unclosed") })
}

func TestSensitiveFileRules(t *testing.T) {
	tests := []struct {
		name    string
		relPath string
		label   string
	}{
		{".env", ".env", "dotenv file"},
		{".env.local", "app/.env.local", "dotenv file"},
		{".env.staging.local", ".env.staging.local", "dotenv file"},
		{".env.production", ".env.production", "dotenv file"},
		{"key file", "certs/server.key", "private key file"},
		{"pem file", "certs/ca.PEM", "certificate/key file"},
		{"private key fragment", "backup/Private_Key.txt", "private key"},
		{"secret key fragment", "secret_key.json", "secret key"},
		{"credentials fragment", "gcp-credentials.json", "credentials"},
		{"oauth token", "oauth_token.txt", "OAuth token"},
		{"api key", "my_api_key", "API key"},
		{"auth token", "auth_token.dat", "auth token"},
		{"vscode settings", ".vscode/settings.json", "VS Code settings"},
		{"idea workspace", "tools/.idea/workspace.xml", "IntelliJ workspace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := FirstMatch(SensitiveFileRules, baseName(tt.relPath), tt.relPath)
			if assert.True(t, ok, "%s should be sensitive", tt.relPath) {
				assert.Equal(t, tt.label, rule.Label)
			}
		})
	}

	clean := []string{"README.md", "src/env.ts", "environment.yaml", ".envrc", "keyboard.go", "docs/settings.json"}
	for _, p := range clean {
		_, ok := FirstMatch(SensitiveFileRules, baseName(p), p)
		assert.False(t, ok, "%s should not be sensitive", p)
	}
}

func TestCredentialContent(t *testing.T) {
	assert.True(t, CredentialContent.Match("API_KEY=abc"))
	assert.True(t, CredentialContent.Match("password: hunter2"))
	assert.True(t, CredentialContent.Match("Token = x"))
	assert.False(t, CredentialContent.Match("just some notes"))
}

func TestClassifySizeAndLimits(t *testing.T) {
	assert.Equal(t, CategoryVideo, ClassifySize(".mp4"))
	assert.Equal(t, CategoryImage, ClassifySize(".png"))
	assert.Equal(t, CategoryDefault, ClassifySize(".go"))
	assert.Equal(t, CategoryDefault, ClassifySize(""))

	_, ok := SizeLimit(CategoryVideo)
	assert.False(t, ok)

	limit, ok := SizeLimit(CategoryImage)
	assert.True(t, ok)
	assert.Equal(t, int64(512000), limit)

	limit, ok = SizeLimit(CategoryDefault)
	assert.True(t, ok)
	assert.Equal(t, int64(1048576), limit)
}

func TestNormalizesWhitespace(t *testing.T) {
	for _, ext := range []string{".ts", ".json", ".md", ".yml", ".yaml", ".go"} {
		assert.True(t, NormalizesWhitespace(ext), ext)
	}
	for _, ext := range []string{".png", ".lock", "", ".txt"} {
		assert.False(t, NormalizesWhitespace(ext), ext)
	}
}

func TestDefaultExclusions(t *testing.T) {
	set := DefaultExclusions()
	for _, name := range []string{".git", "node_modules", "dist", "build", "coverage"} {
		assert.True(t, set.Contains(name), name)
	}
	assert.False(t, set.Contains("src"))
}

func TestRecommendedField(t *testing.T) {
	field, ok := RecommendedField(KindAgent)
	assert.True(t, ok)
	assert.Equal(t, "model", field)

	field, ok = RecommendedField(KindSkill)
	assert.True(t, ok)
	assert.Equal(t, "location", field)

	_, ok = RecommendedField(KindCommand)
	assert.False(t, ok)
}

func baseName(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[i+1:]
		}
	}
	return p
}
