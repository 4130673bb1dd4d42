// Package command provides the command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands.
const (
	CategoryMovement = "movement"
	CategoryWorld    = "world"
	CategoryItems    = "items"
	CategorySystem   = "system"
)

// CategoryOrder is the order in which categories are listed to the player.
var CategoryOrder = []string{CategoryMovement, CategoryWorld, CategoryItems, CategorySystem}

// Handler identifiers mapping commands to turn-engine handlers.
const (
	HandlerMove      = "move"
	HandlerLook      = "look"
	HandlerSpeak     = "speak"
	HandlerCollect   = "collect"
	HandlerDrop      = "drop"
	HandlerInventory = "inventory"
	HandlerScore     = "score"
	HandlerQuit      = "quit"
	HandlerMenu      = "menu"
	HandlerHelp      = "help"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the usage text shown by "help <command>".
	Help string
	// Category groups the command.
	Category string
	// Handler selects the turn-engine handler.
	Handler string
	// Action is the location action the command needs. Empty means the
	// command is available everywhere.
	Action string
}

// BuiltinCommands returns all built-in commands for the game.
func BuiltinCommands() []Command {
	return []Command{
		// Movement commands
		{Name: "go", Help: "go [direction] -> direction can be north, south, east, or west (be mindful of your moves left)", Category: CategoryMovement, Handler: HandlerMove, Action: "go"},
		{Name: "north", Aliases: []string{"n"}, Help: "north -> shorthand for 'go north'", Category: CategoryMovement, Handler: HandlerMove, Action: "go"},
		{Name: "south", Aliases: []string{"s"}, Help: "south -> shorthand for 'go south'", Category: CategoryMovement, Handler: HandlerMove, Action: "go"},
		{Name: "east", Aliases: []string{"e"}, Help: "east -> shorthand for 'go east'", Category: CategoryMovement, Handler: HandlerMove, Action: "go"},
		{Name: "west", Aliases: []string{"w"}, Help: "west -> shorthand for 'go west'", Category: CategoryMovement, Handler: HandlerMove, Action: "go"},

		// World commands
		{Name: "look", Aliases: []string{"l"}, Help: "look -> display long location description and reveals any npcs and items in this location.", Category: CategoryWorld, Handler: HandlerLook, Action: "look"},
		{Name: "speak", Aliases: []string{"talk"}, Help: "speak -> interact with NPCs for clues about the items (hint: use 'look' first)", Category: CategoryWorld, Handler: HandlerSpeak, Action: "speak"},

		// Item commands
		{Name: "collect", Aliases: []string{"get", "take"}, Help: "collect [item_name] -> collects an item (hint: use 'look' first and speak to npcs)", Category: CategoryItems, Handler: HandlerCollect, Action: "collect"},
		{Name: "drop", Help: "drop [item_name] -> drops an item from your inventory that can be picked up in the same location (hint: to drop all items, type 'drop')", Category: CategoryItems, Handler: HandlerDrop, Action: "drop"},
		{Name: "inventory", Aliases: []string{"inv", "i"}, Help: "inventory -> display all items in your inventory.", Category: CategoryItems, Handler: HandlerInventory, Action: "inventory"},

		// System commands
		{Name: "score", Help: "score -> display your current score.", Category: CategorySystem, Handler: HandlerScore, Action: "score"},
		{Name: "quit", Aliases: []string{"exit"}, Help: "quit -> leave the game.", Category: CategorySystem, Handler: HandlerQuit, Action: "quit"},
		{Name: "menu", Help: "menu -> list the commands available in this location.", Category: CategorySystem, Handler: HandlerMenu},
		{Name: "help", Aliases: []string{"?"}, Help: "help [command] -> explain how to use a command.", Category: CategorySystem, Handler: HandlerHelp},
	}
}

// IsMovementCommand reports whether the command name is a compass direction.
func IsMovementCommand(name string) bool {
	switch name {
	case "north", "south", "east", "west":
		return true
	default:
		return false
	}
}
