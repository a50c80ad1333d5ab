package core

// Action is a semantic visualizer command, abstracted from physical keys.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // move cursor up
	ActionDown               // move cursor down
	ActionLeft               // move cursor left
	ActionRight              // move cursor right
	ActionToggleWall         // flip the wall under the cursor
	ActionPlaceStart         // move the start to the cursor
	ActionPlaceFinish        // move the finish to the cursor
	ActionVisualize          // run the search and replay it
	ActionSkip               // reveal the rest of the replay
	ActionClearWalls         // remove every wall
	ActionNextPattern        // paint the next registered pattern
	ActionEditForm           // open the start/finish/size form
	ActionSave               // save the grid as a layout
	ActionRefresh            // rebuild the grid from config
	ActionToggleConn         // switch 4/8 connectivity
	ActionCycleSpeed         // step through the replay speed presets
	ActionHelp               // expand or collapse help
	ActionBack               // leave the current screen
	ActionQuit               // exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggleWall:
		return "ToggleWall"
	case ActionPlaceStart:
		return "PlaceStart"
	case ActionPlaceFinish:
		return "PlaceFinish"
	case ActionVisualize:
		return "Visualize"
	case ActionSkip:
		return "Skip"
	case ActionClearWalls:
		return "ClearWalls"
	case ActionNextPattern:
		return "NextPattern"
	case ActionEditForm:
		return "EditForm"
	case ActionSave:
		return "Save"
	case ActionRefresh:
		return "Refresh"
	case ActionToggleConn:
		return "ToggleConn"
	case ActionCycleSpeed:
		return "CycleSpeed"
	case ActionHelp:
		return "Help"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Delta returns the cursor step for a movement action, or (0, 0).
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	default:
		return 0, 0
	}
}
