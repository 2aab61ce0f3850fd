package quest

// ExitQuest is complete while a player stands on an exit.
type ExitQuest struct{}

// NewExitQuest creates the exit goal.
func NewExitQuest() *ExitQuest { return &ExitQuest{} }

func (*ExitQuest) IsComplete(s State) bool { return s.PlayerAtExit() }
func (*ExitQuest) Description() string     { return "Reach the exit" }

// TreasureQuest is complete when no uncollected treasure remains.
type TreasureQuest struct{}

// NewTreasureQuest creates the treasure goal.
func NewTreasureQuest() *TreasureQuest { return &TreasureQuest{} }

func (*TreasureQuest) IsComplete(s State) bool { return !s.HasUncollectedTreasure() }
func (*TreasureQuest) Description() string     { return "Collect all treasure" }

// BouldersQuest is complete when every switch has a boulder on it.
type BouldersQuest struct{}

// NewBouldersQuest creates the boulders goal.
func NewBouldersQuest() *BouldersQuest { return &BouldersQuest{} }

func (*BouldersQuest) IsComplete(s State) bool { return s.AllSwitchesPressed() }
func (*BouldersQuest) Description() string     { return "Put a boulder on every switch" }

// EnemyQuest is complete when no hostile actor remains.
type EnemyQuest struct{}

// NewEnemyQuest creates the enemies goal.
func NewEnemyQuest() *EnemyQuest { return &EnemyQuest{} }

func (*EnemyQuest) IsComplete(s State) bool { return !s.HasHostiles() }
func (*EnemyQuest) Description() string     { return "Defeat all enemies" }
