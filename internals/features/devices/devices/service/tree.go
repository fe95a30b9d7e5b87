// file: internals/features/devices/devices/service/tree.go
package service

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"aptads_backend/internals/features/devices/devices/model"
)

// UnsetLabel groups devices with an empty building/line/place.
const UnsetLabel = "-"

type DeviceLeaf struct {
	DeviceID         uuid.UUID  `json:"device_id"`
	DeviceSerial     string     `json:"device_serial"`
	DeviceIsActive   bool       `json:"device_is_active"`
	DeviceLastSeenAt *time.Time `json:"device_last_seen_at,omitempty"`
}

type PlaceNode struct {
	Name    string       `json:"name"`
	Devices []DeviceLeaf `json:"devices"`
}

type LineNode struct {
	Name   string      `json:"name"`
	Places []PlaceNode `json:"places"`
}

type BuildingNode struct {
	Name        string     `json:"name"`
	DeviceCount int        `json:"device_count"`
	Lines       []LineNode `json:"lines"`
}

func label(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return UnsetLabel
	}
	return s
}

// BuildDeviceTree groups devices building → line → place.
// Every level is ordered with NaturalLess; devices sort by serial.
func BuildDeviceTree(devices []model.DeviceModel) []BuildingNode {
	tree := map[string]map[string]map[string][]DeviceLeaf{}
	for _, d := range devices {
		b, l, p := label(d.DeviceBuilding), label(d.DeviceLine), label(d.DevicePlace)
		if tree[b] == nil {
			tree[b] = map[string]map[string][]DeviceLeaf{}
		}
		if tree[b][l] == nil {
			tree[b][l] = map[string][]DeviceLeaf{}
		}
		tree[b][l][p] = append(tree[b][l][p], DeviceLeaf{
			DeviceID:         d.DeviceID,
			DeviceSerial:     d.DeviceSerial,
			DeviceIsActive:   d.DeviceIsActive,
			DeviceLastSeenAt: d.DeviceLastSeenAt,
		})
	}

	out := make([]BuildingNode, 0, len(tree))
	for _, b := range sortedKeys(tree) {
		bn := BuildingNode{Name: b, Lines: []LineNode{}}
		for _, l := range sortedKeys(tree[b]) {
			ln := LineNode{Name: l, Places: []PlaceNode{}}
			for _, p := range sortedKeys(tree[b][l]) {
				leaves := tree[b][l][p]
				sort.SliceStable(leaves, func(i, j int) bool {
					return NaturalLess(leaves[i].DeviceSerial, leaves[j].DeviceSerial)
				})
				ln.Places = append(ln.Places, PlaceNode{Name: p, Devices: leaves})
				bn.DeviceCount += len(leaves)
			}
			bn.Lines = append(bn.Lines, ln)
		}
		out = append(out, bn)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return NaturalLess(keys[i], keys[j]) })
	return keys
}

// NaturalLess compares digit runs by value ("2동" < "10동"); UnsetLabel sorts last.
func NaturalLess(a, b string) bool {
	if a == b {
		return false
	}
	if a == UnsetLabel {
		return false
	}
	if b == UnsetLabel {
		return true
	}
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		if isDigit(ra[i]) && isDigit(rb[j]) {
			si := i
			for i < len(ra) && isDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && isDigit(rb[j]) {
				j++
			}
			na := strings.TrimLeft(string(ra[si:i]), "0")
			nb := strings.TrimLeft(string(rb[sj:j]), "0")
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			continue
		}
		if ra[i] != rb[j] {
			return ra[i] < rb[j]
		}
		i++
		j++
	}
	if len(ra)-i != len(rb)-j {
		return len(ra)-i < len(rb)-j
	}
	return a < b
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
