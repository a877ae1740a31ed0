// Package metadata signs and verifies the run metadata block appended to
// the output manifest: fiscal year, generation timestamp, and a content
// hash over the manifest body.
package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// TagStart is the start of the metadata block.
	TagStart = "--- METADATA_START"
	// TagEnd is the end of the metadata block.
	TagEnd = "METADATA_END ---"
)

// Metadata verification errors.
var (
	ErrNoMetadataBlock = errors.New("no metadata block found")
	ErrNoHashFound     = errors.New("no hash found in metadata")
	ErrHashMismatch    = errors.New("hash mismatch")
)

// Metadata describes one conversion run.
type Metadata struct {
	GeneratedAt time.Time
	FiscalYear  string
	RunID       string
	Hash        string
}

// metadataRegex matches the entire metadata block including tags.
var metadataRegex = regexp.MustCompile(`(?s)---\s*METADATA_START\s*\n(.*?)\n\s*METADATA_END\s*---`)

// Extract removes the metadata block from content and returns both the
// metadata and the cleaned content. The cleaned content is what gets
// hashed.
func Extract(content string) (*Metadata, string) {
	match := metadataRegex.FindStringSubmatch(content)
	clean := metadataRegex.ReplaceAllString(content, "")
	clean = strings.TrimRight(clean, "\n")

	if len(match) < 2 {
		return nil, clean
	}

	meta := &Metadata{}

	for _, line := range strings.Split(match[1], "\n") {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])

		switch key {
		case "FISCAL_YEAR":
			meta.FiscalYear = val
		case "GENERATED_AT":
			if t, err := time.Parse(time.RFC3339, val); err == nil {
				meta.GeneratedAt = t
			}
		case "RUN_ID":
			meta.RunID = val
		case "HASH":
			meta.Hash = val
		}
	}

	return meta, clean
}

// CalculateHash computes the SHA-256 hash of the content, excluding any
// metadata block.
func CalculateHash(content string) string {
	_, clean := Extract(content)
	hash := sha256.Sum256([]byte(clean))

	return hex.EncodeToString(hash[:])
}

// Sign appends or replaces the metadata block with a fresh hash and the
// run's fiscal year, generation timestamp, and identifier.
func Sign(content, fiscalYear, runID string, generatedAt time.Time) string {
	_, clean := Extract(content)
	hash := CalculateHash(clean)

	block := fmt.Sprintf("\n\n%s\nFISCAL_YEAR: %s\nGENERATED_AT: %s\nRUN_ID: %s\nHASH: %s\n%s",
		TagStart,
		fiscalYear,
		generatedAt.UTC().Format(time.RFC3339),
		runID,
		hash,
		TagEnd,
	)

	return clean + block
}

// Verify checks the content against the hash in its metadata block.
func Verify(content string) (bool, error) {
	meta, clean := Extract(content)
	if meta == nil {
		return false, ErrNoMetadataBlock
	}

	if meta.Hash == "" {
		return false, ErrNoHashFound
	}

	calculated := CalculateHash(clean)
	if calculated != meta.Hash {
		return false, fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, meta.Hash, calculated)
	}

	return true, nil
}
