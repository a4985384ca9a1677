package rules

import (
	"github.com/vvka-141/repoguard/internal/files/scanner"
	"github.com/vvka-141/repoguard/pkg/repoguard"
)

// excludedDirs are build output, dependency caches and VCS metadata.
var excludedDirs = []string{
	".git",
	"node_modules",
	"dist",
	"build",
	"out",
	"coverage",
	".next",
	".turbo",
	".cache",
	"__pycache__",
	".venv",
	"vendor",
}

// DefaultExclusions returns a fresh ExclusionSet of the directory names no
// check descends into.
func DefaultExclusions() scanner.ExclusionSet {
	return scanner.NewExclusionSet(excludedDirs...)
}

// SensitiveFileRules flag files that must never be committed.
var SensitiveFileRules = []Rule{
	{Label: "dotenv file", Field: FieldName, Matcher: Pattern(`(?i)^\.env(\..*)?$`)},
	{Label: "private key file", Field: FieldName, Matcher: Pattern(`(?i)\.key$`)},
	{Label: "certificate/key file", Field: FieldName, Matcher: Pattern(`(?i)\.pem$`)},
	{Label: "private key", Field: FieldName, Matcher: Substring("private_key")},
	{Label: "secret key", Field: FieldName, Matcher: Substring("secret_key")},
	{Label: "credentials", Field: FieldName, Matcher: Substring("credentials")},
	{Label: "OAuth token", Field: FieldName, Matcher: Substring("oauth_token")},
	{Label: "API key", Field: FieldName, Matcher: Substring("api_key")},
	{Label: "auth token", Field: FieldName, Matcher: Substring("auth_token")},
	{Label: "VS Code settings", Field: FieldRelativePath, Matcher: Glob("**/.vscode/settings.json")},
	{Label: "IntelliJ workspace", Field: FieldRelativePath, Matcher: Glob("**/.idea/workspace.xml")},
}

// DotenvRule identifies dotenv files, whose keys are listed when they hold credentials.
var DotenvRule = SensitiveFileRules[0]

// CredentialContent matches content that looks like an assigned secret.
var CredentialContent = Pattern(`(?i)(key|secret|password|token)\s*[:=]`)

// CredentialKey matches dotenv key names that look like secrets.
var CredentialKey = Pattern(`(?i)(key|secret|password|token)`)

// Size categories.
const (
	ImageSizeLimit   = 500 * repoguard.KiB
	DefaultSizeLimit = 1 * repoguard.MiB
)

var videoExtensions = newExtensionSet(
	".mp4", ".mov", ".avi", ".mkv", ".webm", ".wmv", ".flv", ".m4v", ".mpg", ".mpeg",
)

var imageExtensions = newExtensionSet(
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg", ".ico", ".tiff",
)

// SizeCategory classifies a file for the size check.
type SizeCategory int

const (
	CategoryDefault SizeCategory = iota
	CategoryImage
	CategoryVideo
)

func (c SizeCategory) String() string {
	switch c {
	case CategoryImage:
		return "image"
	case CategoryVideo:
		return "video"
	default:
		return "file"
	}
}

// ClassifySize returns the size category for a lower-cased extension.
func ClassifySize(ext string) SizeCategory {
	switch {
	case videoExtensions.has(ext):
		return CategoryVideo
	case imageExtensions.has(ext):
		return CategoryImage
	default:
		return CategoryDefault
	}
}

// SizeLimit returns the byte limit for a category. Videos have no limit
// because they are never allowed; ok is false for them.
func SizeLimit(c SizeCategory) (limit int64, ok bool) {
	switch c {
	case CategoryVideo:
		return 0, false
	case CategoryImage:
		return ImageSizeLimit, true
	default:
		return DefaultSizeLimit, true
	}
}

var whitespaceExtensions = newExtensionSet(
	".go", ".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs", ".py", ".sh",
	".css", ".scss", ".html",
	".json", ".jsonc",
	".md", ".mdx",
	".yml", ".yaml",
)

// NormalizesWhitespace reports whether files with this extension are
// normalized by the whitespace check.
func NormalizesWhitespace(ext string) bool {
	return whitespaceExtensions.has(ext)
}

// MetadataKind tells which recommendations apply to a metadata directory.
type MetadataKind string

const (
	KindAgent   MetadataKind = "agent"
	KindSkill   MetadataKind = "skill"
	KindCommand MetadataKind = "command"
)

// MetadataDir is a directory whose markdown files carry frontmatter.
type MetadataDir struct {
	Path string // relative to the scan root
	Kind MetadataKind
}

// MetadataDirs are scanned in this order; the order decides which file is
// the first occurrence of a duplicated name.
var MetadataDirs = []MetadataDir{
	{Path: "agents", Kind: KindAgent},
	{Path: "skills", Kind: KindSkill},
	{Path: "commands", Kind: KindCommand},
}

// RecommendedField returns the advisory frontmatter key for a kind, if any.
func RecommendedField(kind MetadataKind) (string, bool) {
	switch kind {
	case KindAgent:
		return "model", true
	case KindSkill:
		return "location", true
	default:
		return "", false
	}
}

// MetadataExtension is the extension of files validated in metadata directories.
const MetadataExtension = ".md"

type extensionSet map[string]struct{}

func newExtensionSet(exts ...string) extensionSet {
	set := make(extensionSet, len(exts))
	for _, e := range exts {
		set[e] = struct{}{}
	}
	return set
}

func (s extensionSet) has(ext string) bool {
	_, ok := s[ext]
	return ok
}
