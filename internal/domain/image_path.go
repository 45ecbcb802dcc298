package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenerateImagePaths が組み立てるストレージパスの形式:
// {resourceType}/{identifier}/raw/{base}.{ext}
// {resourceType}/{identifier}/optimized/{base}.webp
const (
	PlaceholderSegment     = "unknown"
	PlaceholderFilename    = "image"
	DefaultRawExtension    = "jpg"
	OptimizedExtension     = "webp"
	rawDirectoryName       = "raw"
	optimizedDirectoryName = "optimized"
)

var (
	invalidSegmentChars   = regexp.MustCompile(`[^a-z0-9._-]+`)
	invalidExtensionChars = regexp.MustCompile(`[^a-z0-9]+`)
)

type ImagePathDescriptor struct {
	resourceType      string
	identifier        string
	rawFilename       string
	optimizedFilename string
	rawPath           string
	optimizedPath     string
}

// GenerateImagePaths は(resourceType, identifier, filename)からraw/optimizedのパスを決定的に導出する。
// includeOptimizedがfalse、またはoptimizedを持たないリソース種別の場合、optimizedパスは空になる。
func GenerateImagePaths(resourceType, identifier, filename string, includeOptimized bool) ImagePathDescriptor {
	safeType := sanitizeSegment(resourceType, PlaceholderSegment)
	safeID := sanitizeSegment(identifier, PlaceholderSegment)
	base, ext := splitFilename(filename)

	d := ImagePathDescriptor{
		resourceType:      safeType,
		identifier:        safeID,
		rawFilename:       base + "." + ext,
		optimizedFilename: base + "." + OptimizedExtension,
	}
	d.rawPath = strings.Join([]string{safeType, safeID, rawDirectoryName, d.rawFilename}, "/")

	if includeOptimized && !ResourceType(safeType).SkipsOptimization() {
		d.optimizedPath = strings.Join([]string{safeType, safeID, optimizedDirectoryName, d.optimizedFilename}, "/")
	}

	return d
}

func (d ImagePathDescriptor) ResourceType() string {
	return d.resourceType
}

func (d ImagePathDescriptor) Identifier() string {
	return d.identifier
}

func (d ImagePathDescriptor) RawFilename() string {
	return d.rawFilename
}

func (d ImagePathDescriptor) OptimizedFilename() string {
	return d.optimizedFilename
}

func (d ImagePathDescriptor) RawPath() string {
	return d.rawPath
}

// OptimizedPath はoptimizedパスを返す。optimizedを持たない場合はfalseを返す。
func (d ImagePathDescriptor) OptimizedPath() (string, bool) {
	return d.optimizedPath, d.optimizedPath != ""
}

// PathFor はバリアントに対応するパスを返す。optimizedが無い場合はrawにフォールバックする。
func (d ImagePathDescriptor) PathFor(variant ImageVariant) string {
	if variant == ImageVariantOptimized {
		if p, ok := d.OptimizedPath(); ok {
			return p
		}
	}
	return d.rawPath
}

func splitFilename(filename string) (string, string) {
	base, ext := filename, ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		base, ext = filename[:i], filename[i+1:]
	}

	safeExt := invalidExtensionChars.ReplaceAllString(strings.ToLower(stripDiacritics(ext)), "")
	if safeExt == "" {
		safeExt = DefaultRawExtension
	}

	return sanitizeSegment(base, PlaceholderFilename), safeExt
}

func sanitizeSegment(value, placeholder string) string {
	lowered := strings.ToLower(stripDiacritics(value))
	replaced := invalidSegmentChars.ReplaceAllString(lowered, "-")
	trimmed := strings.Trim(replaced, "-")
	if strings.Trim(trimmed, ".") == "" {
		return placeholder
	}
	return trimmed
}

func stripDiacritics(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return stripped
}
