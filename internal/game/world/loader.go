package world

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cory-johannsen/campus-adventure/internal/game/inventory"
)

const (
	blockHeader = "LOCATION"
	blockEnd    = "END"
)

// LoadMap parses a grid of whitespace-separated location IDs, one row per
// line. Blank lines are skipped.
//
// Precondition: r must be non-nil.
// Postcondition: Returns a rectangular grid or a non-nil error naming the offending line.
func LoadMap(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("map line %d: column %d: %w", lineNo, i+1, err)
			}
			row[i] = n
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("map line %d: expected %d columns, got %d", lineNo, len(grid[0]), len(row))
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("map is empty")
	}
	return grid, nil
}

// LoadItems parses item records of the form
//
//	<start> <target> <points> <name...> <code>
//
// Every loaded item is essential; callers narrow the set afterwards. Records
// with fewer than five fields are skipped.
//
// Precondition: r must be non-nil.
// Postcondition: Returns items keyed by start location ID, or a non-nil error.
func LoadItems(r io.Reader) (map[int]*inventory.Item, error) {
	items := make(map[int]*inventory.Item)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		parts := strings.Fields(sc.Text())
		if len(parts) < 5 {
			continue
		}
		var nums [3]int
		for i := range nums {
			n, err := strconv.Atoi(parts[i])
			if err != nil {
				return nil, fmt.Errorf("items line %d: field %d: %w", lineNo, i+1, err)
			}
			nums[i] = n
		}
		name := strings.Join(parts[3:len(parts)-1], " ")
		code := parts[len(parts)-1]
		if existing, ok := items[nums[0]]; ok {
			return nil, fmt.Errorf("items line %d: start location %d already holds %q", lineNo, nums[0], existing.Name)
		}
		it := inventory.NewItem(name, nums[0], nums[1], nums[2], code, true)
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("items line %d: %w", lineNo, err)
		}
		items[nums[0]] = it
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}
	return items, nil
}

// LocationOptions controls how location blocks are turned into Locations.
type LocationOptions struct {
	// Actions is the command vocabulary offered at each location.
	Actions []string
	// RestrictedIDs lists locations that are locked until KeyItem is carried.
	RestrictedIDs []int
	// KeyItem is the start location ID of the item unlocking restricted locations.
	KeyItem int
}

type locationBlock struct {
	id     int
	line   int
	score  int
	scored bool
	long   []string
	short  []string
	inLong bool
}

// LoadLocations parses location blocks of the form
//
//	LOCATION <id>
//	<score>
//	<long description lines>
//
//	<short description>
//	END
//
// Long description lines are joined with a single space.
//
// Precondition: grid must be non-empty; items must contain opts.KeyItem when
// opts.RestrictedIDs is non-empty.
// Postcondition: Returns locations keyed by ID, or a non-nil error.
func LoadLocations(r io.Reader, grid [][]int, items map[int]*inventory.Item, opts LocationOptions) (map[int]*Location, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("loading locations: empty map")
	}
	width, height := len(grid[0]), len(grid)
	restricted := make(map[int]bool, len(opts.RestrictedIDs))
	for _, id := range opts.RestrictedIDs {
		restricted[id] = true
	}
	var key *inventory.Item
	if len(restricted) > 0 {
		k, ok := items[opts.KeyItem]
		if !ok {
			return nil, fmt.Errorf("loading locations: key item at location %d not found", opts.KeyItem)
		}
		key = k
	}

	locations := make(map[int]*Location)
	var cur *locationBlock
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case isBlockHeader(line):
			if cur != nil {
				return nil, fmt.Errorf("locations line %d: LOCATION inside unterminated block %d", lineNo, cur.id)
			}
			id, err := parseHeaderID(line)
			if err != nil {
				return nil, fmt.Errorf("locations line %d: %w", lineNo, err)
			}
			if _, dup := locations[id]; dup {
				return nil, fmt.Errorf("locations line %d: duplicate location %d", lineNo, id)
			}
			cur = &locationBlock{id: id, line: lineNo, inLong: true}
		case cur == nil:
			if line != "" {
				return nil, fmt.Errorf("locations line %d: text outside a LOCATION block", lineNo)
			}
		case line == blockEnd:
			if len(cur.short) == 0 {
				return nil, fmt.Errorf("location %d: missing short description", cur.id)
			}
			if len(cur.long) == 0 {
				return nil, fmt.Errorf("location %d: missing long description", cur.id)
			}
			long := strings.Join(cur.long, " ")
			short := strings.Join(cur.short, " ")
			if restricted[cur.id] {
				locations[cur.id] = NewRestrictedLocation(cur.id, width, height, cur.score, short, long, opts.Actions,
					LockSpec{RequiredItem: key, Blocked: DefaultBlockedActions})
			} else {
				locations[cur.id] = NewLocation(cur.id, width, height, cur.score, short, long, opts.Actions)
			}
			cur = nil
		case !cur.scored:
			if line == "" {
				continue
			}
			n, err := strconv.Atoi(line)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("location %d: line %d: expected non-negative score, got %q", cur.id, lineNo, line)
			}
			cur.score, cur.scored = n, true
		case line == "":
			if cur.inLong && len(cur.long) > 0 {
				cur.inLong = false
			}
		case cur.inLong:
			cur.long = append(cur.long, line)
		default:
			cur.short = append(cur.short, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading locations: %w", err)
	}
	if cur != nil {
		return nil, fmt.Errorf("location %d: block starting at line %d is not terminated by END", cur.id, cur.line)
	}
	return locations, nil
}

// LoadNPCs parses NPC dialogue blocks of the form
//
//	LOCATION <id>
//	<points> <dialogue...>
//	END
//
// Dialogue lines are joined with a single space. End of input closes a final
// unterminated block.
//
// Precondition: r must be non-nil.
// Postcondition: Returns dialogue keyed by location ID, or a non-nil error.
func LoadNPCs(r io.Reader) (map[int]NPCLine, error) {
	npcs := make(map[int]NPCLine)
	seen := make(map[int]bool)
	var (
		id     int
		open   bool
		start  int
		lines  []string
		lineNo int
	)
	flush := func() error {
		if !open || len(lines) == 0 {
			return nil
		}
		npc, err := ParseNPCLine(strings.Join(lines, " "))
		if err != nil {
			return fmt.Errorf("npc block at line %d (location %d): %w", start, id, err)
		}
		npcs[id] = npc
		return nil
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case isBlockHeader(line):
			if err := flush(); err != nil {
				return nil, err
			}
			n, err := parseHeaderID(line)
			if err != nil {
				return nil, fmt.Errorf("npcs line %d: %w", lineNo, err)
			}
			if seen[n] {
				return nil, fmt.Errorf("npcs line %d: duplicate NPC block for location %d", lineNo, n)
			}
			seen[n] = true
			id, open, start, lines = n, true, lineNo, nil
		case line == blockEnd:
			if err := flush(); err != nil {
				return nil, err
			}
			open, lines = false, nil
		case line == "":
			// blank lines carry no dialogue
		case !open:
			return nil, fmt.Errorf("npcs line %d: dialogue outside a LOCATION block", lineNo)
		default:
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading npcs: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return npcs, nil
}

// ParseNPCLine splits raw dialogue into its leading point value and the
// spoken text.
//
// Postcondition: Returns an error if the leading token is not a non-negative integer.
func ParseNPCLine(raw string) (NPCLine, error) {
	raw = strings.TrimSpace(raw)
	head, rest, _ := strings.Cut(raw, " ")
	points, err := strconv.Atoi(head)
	if err != nil {
		return NPCLine{}, fmt.Errorf("dialogue must start with a point value: %w", err)
	}
	if points < 0 {
		return NPCLine{}, fmt.Errorf("dialogue point value must be >= 0, got %d", points)
	}
	text := strings.TrimSpace(rest)
	if text == "" {
		return NPCLine{}, fmt.Errorf("dialogue text is empty")
	}
	return NPCLine{Points: points, Text: text}, nil
}

// isBlockHeader reports whether line opens a block. The keyword must be the
// whole first word, so prose such as "LOCATIONS nearby" stays text.
func isBlockHeader(line string) bool {
	fields := strings.Fields(line)
	return len(fields) > 0 && fields[0] == blockHeader
}

func parseHeaderID(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || fields[0] != blockHeader {
		return 0, fmt.Errorf("malformed header %q", line)
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("header %q: %w", line, err)
	}
	if id < 1 {
		return 0, fmt.Errorf("header %q: location id must be >= 1", line)
	}
	return id, nil
}
