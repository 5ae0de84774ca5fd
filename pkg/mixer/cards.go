package mixer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Card discovery errors.
var (
	ErrNoCards = errors.New("no control devices found")
)

const (
	// DefaultChipNamePattern is the sysfs file exposing the codec chip
	// name for a card. The single %d verb is the card number.
	DefaultChipNamePattern = "/sys/class/sound/hwC%dD0/chip_name"

	// DefaultDeviceDir is the directory scanned for control devices.
	DefaultDeviceDir = "/dev/snd"

	// UnknownVendor is the vendor token used when the chip name cannot
	// be read.
	UnknownVendor = "unknown"
)

// VendorName reads and normalizes the codec chip name for a card.
// pattern must contain one %d verb for the card number; an empty pattern
// selects DefaultChipNamePattern. Unreadable or empty chip-name files
// yield UnknownVendor.
func VendorName(pattern string, card int) string {
	if pattern == "" {
		pattern = DefaultChipNamePattern
	}

	data, err := os.ReadFile(fmt.Sprintf(pattern, card))
	if err != nil {
		return UnknownVendor
	}

	name := NormalizeVendor(string(data))
	if name == "" {
		return UnknownVendor
	}
	return name
}

// NormalizeVendor lower-cases a chip name and replaces spaces with
// underscores, so it can be used in a definitions filename.
func NormalizeVendor(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, " ", "_")
}

// DefinitionsFile returns the per-vendor mixer path definitions filename
// under dir, following the mixer_paths_<vendor>.xml convention.
func DefinitionsFile(dir, vendor string) string {
	return filepath.Join(dir, fmt.Sprintf("mixer_paths_%s.xml", vendor))
}

// FirstCard scans devDir (DefaultDeviceDir when empty) for control
// device nodes and returns the lowest card number found.
func FirstCard(devDir string) (int, error) {
	if devDir == "" {
		devDir = DefaultDeviceDir
	}

	entries, err := os.ReadDir(devDir)
	if err != nil {
		return -1, fmt.Errorf("reading %s: %w", devDir, err)
	}

	var cards []int
	for _, e := range entries {
		n, ok := strings.CutPrefix(e.Name(), "controlC")
		if !ok {
			continue
		}
		card, err := strconv.Atoi(n)
		if err != nil {
			continue
		}
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return -1, ErrNoCards
	}
	sort.Ints(cards)
	return cards[0], nil
}
