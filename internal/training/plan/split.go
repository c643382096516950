package plan

const SplitName = "PPL A/B"

const (
	DayPushA = "Push A — Chest + Triceps + Core"
	DayPullA = "Pull A — Back Thickness + Biceps + Grip"
	DayLegsA = "Legs A — Quads + Balance + Core"
	DayPushB = "Push B — Shoulders + Triceps + Core"
	DayPullB = "Pull B — Width + Posterior + Grip + Lower Back"
	DayLegsB = "Legs B — Glutes + Hamstrings + Lower Back + Core"
)

func reps(lo, hi int) *RepRange {
	return &RepRange{Min: lo, Max: hi}
}

var splitDays = []Day{
	{
		Name: DayPushA,
		Entries: []Entry{
			{Exercise: "Barbell Bench Press", Sets: 4, Reps: reps(6, 8), Category: CategoryCompound, Icon: "🏋️", Tip: "Elbows ~45°, 2–3s eccentric"},
			{Exercise: "Incline Dumbbell Press", Sets: 3, Reps: reps(8, 10), Category: CategoryCompound, Icon: "📈", Tip: "Slight arch, deep stretch"},
			{Exercise: "Machine/Cable Fly", Sets: 3, Reps: reps(12, 15), Category: CategoryIsolation, Icon: "🦋", Tip: "Hug a tree, squeeze"},
			{Exercise: "Overhead DB Triceps Extension", Sets: 3, Reps: reps(10, 12), Category: CategoryIsolation, Icon: "🎯", Tip: "Long head stretch"},
			{Exercise: "Seated DB Lateral Raise", Sets: 3, Reps: reps(15, 20), Category: CategoryIsolation, Icon: "🏹", Tip: "Lead with elbows"},
			{Exercise: "Rope Pushdown", Sets: 3, Reps: reps(12, 15), Category: CategoryIsolation, Icon: "🪢", Tip: "Flare rope at bottom"},
			{Exercise: "Weighted Decline Sit-Up", Sets: 3, Reps: reps(10, 12), Category: CategoryCore, Icon: "🧱", Tip: "Ribs to pelvis"},
			{Exercise: "Pallof Press", Sets: 3, Reps: reps(12, 15), Category: CategoryCore, Icon: "🧭", Tip: "Resist rotation"},
		},
	},
	{
		Name: DayPullA,
		Entries: []Entry{
			{Exercise: "Barbell Row / Pendlay", Sets: 4, Reps: reps(6, 8), Category: CategoryCompound, Icon: "🛠️", Tip: "Torso ~15°, brace"},
			{Exercise: "Weighted Pull-Up / Lat Pulldown", Sets: 4, Reps: reps(8, 10), Category: CategoryCompound, Icon: "🧗", Tip: "Drive elbows to hips"},
			{Exercise: "Chest-Supported Row", Sets: 3, Reps: reps(10, 12), Category: CategoryCompound, Icon: "🧱", Tip: "No momentum"},
			{Exercise: "Seated Cable Row", Sets: 3, Reps: reps(10, 12), Category: CategoryCompound, Icon: "🎣", Tip: "Pause at chest"},
			{Exercise: "Barbell Curl", Sets: 3, Reps: reps(8, 10), Category: CategoryIsolation, Icon: "🌀", Tip: "Pin elbows"},
			{Exercise: "Hammer Curl", Sets: 3, Reps: reps(10, 12), Category: CategoryIsolation, Icon: "🔨", Tip: "Neutral grip"},
			{Exercise: "Farmer's Carry (steps)", Sets: 3, Duration: 40, Category: CategoryGrip, Icon: "🧺", Tip: "Tall, tight ribs"},
		},
	},
	{
		Name: DayLegsA,
		Entries: []Entry{
			{Exercise: "Front / Safety Bar Squat", Sets: 4, Reps: reps(6, 8), Category: CategoryCompound, Icon: "🧊", Tip: "Upright torso, brace"},
			{Exercise: "Bulgarian Split Squat (supported)", Sets: 3, Reps: reps(10, 12), Category: CategoryUnilateral, Icon: "🦵", Tip: "Use post for balance"},
			{Exercise: "Walking Lunge / Step-Up", Sets: 3, Reps: reps(10, 10), Category: CategoryUnilateral, Icon: "🚶", Tip: "Knee tracks toes"},
			{Exercise: "Leg Extension", Sets: 3, Reps: reps(12, 15), Category: CategoryIsolation, Icon: "🦿", Tip: "Squeeze at top"},
			{Exercise: "Hanging Leg Raise / Ab Rollout", Sets: 3, Reps: reps(12, 15), Category: CategoryCore, Icon: "🏗️", Tip: "Posterior tilt"},
			{Exercise: "Pallof Press", Sets: 3, Reps: reps(12, 15), Category: CategoryCore, Icon: "🧭", Tip: "Neutral pelvis"},
			{Exercise: "Single-Leg Balance Reach (opt)", Sets: 2, Reps: reps(10, 10), Category: CategoryBalance, Icon: "🦶", Tip: "Soft knee, hinge"},
		},
	},
	{
		Name: DayPushB,
		Entries: []Entry{
			{Exercise: "Standing Overhead Press", Sets: 4, Reps: reps(6, 8), Category: CategoryCompound, Icon: "📏", Tip: "Glutes tight, chin back"},
			{Exercise: "Arnold Press", Sets: 3, Reps: reps(8, 10), Category: CategoryCompound, Icon: "🎛️", Tip: "Full ROM"},
			{Exercise: "DB Lateral Raise (slow ecc)", Sets: 3, Reps: reps(15, 20), Category: CategoryIsolation, Icon: "🌙", Tip: "2–3s down"},
			{Exercise: "Machine Chest Press", Sets: 3, Reps: reps(10, 12), Category: CategoryCompound, Icon: "🛡️", Tip: "Neutral grip"},
			{Exercise: "Cable Lateral Raise (1-arm)", Sets: 3, Reps: reps(12, 15), Category: CategoryIsolation, Icon: "🎯", Tip: "Constant tension"},
			{Exercise: "Skullcrusher / Rope Ext.", Sets: 3, Reps: reps(10, 12), Category: CategoryIsolation, Icon: "💥", Tip: "Elbows still"},
			{Exercise: "Cable Woodchop (per side)", Sets: 3, Reps: reps(12, 12), Category: CategoryCore, Icon: "🪓", Tip: "Hips quiet"},
			{Exercise: "Side Plank Hip Raise (sec)", Sets: 3, Duration: 30, Category: CategoryCore, Icon: "🧱", Tip: "Ribs down"},
		},
	},
	{
		Name: DayPullB,
		Entries: []Entry{
			{Exercise: "Wide-Grip Pull-Up / Pulldown", Sets: 4, Reps: reps(6, 10), Category: CategoryCompound, Icon: "🦅", Tip: "Drive scapular depression"},
			{Exercise: "T-Bar / Machine Row", Sets: 4, Reps: reps(8, 10), Category: CategoryCompound, Icon: "⚓", Tip: "Chest up"},
			{Exercise: "Single-Arm DB Row", Sets: 3, Reps: reps(10, 12), Category: CategoryUnilateral, Icon: "🧲", Tip: "Shoulder square"},
			{Exercise: "Reverse Fly / Face Pull", Sets: 3, Reps: reps(15, 20), Category: CategoryIsolation, Icon: "🎣", Tip: "ER + scap set"},
			{Exercise: "Preacher Curl", Sets: 3, Reps: reps(10, 12), Category: CategoryIsolation, Icon: "🧪", Tip: "No shoulder swing"},
			{Exercise: "Zottman / Reverse Curl", Sets: 3, Reps: reps(12, 15), Category: CategoryForearms, Icon: "🔁", Tip: "Slow negative"},
			{Exercise: "Back Extension (weighted)", Sets: 3, Reps: reps(15, 20), Category: CategoryErectors, Icon: "🧱", Tip: "Neutral spine"},
			{Exercise: "Plate Pinch Hold (sec)", Sets: 3, Duration: 45, Category: CategoryGrip, Icon: "📀", Tip: "Thumbs crush"},
		},
	},
	{
		Name: DayLegsB,
		Entries: []Entry{
			{Exercise: "Romanian Deadlift", Sets: 4, Reps: reps(6, 8), Category: CategoryCompound, Icon: "🪵", Tip: "Hinge; shins vertical"},
			{Exercise: "Seated Good Morning", Sets: 3, Reps: reps(10, 12), Category: CategoryErectors, Icon: "🪑", Tip: "Brace, move hips"},
			{Exercise: "Hip Thrust / Glute Bridge", Sets: 3, Reps: reps(10, 12), Category: CategoryCompound, Icon: "🍑", Tip: "Posterior tilt"},
			{Exercise: "Hamstring Curl", Sets: 3, Reps: reps(10, 15), Category: CategoryIsolation, Icon: "🧵", Tip: "Toes neutral"},
			{Exercise: "Weighted Side Plank (sec)", Sets: 3, Duration: 30, Category: CategoryCore, Icon: "🧱", Tip: "Hips stacked"},
			{Exercise: "Back Extension / Reverse Hyper", Sets: 3, Reps: reps(15, 20), Category: CategoryErectors, Icon: "🔁", Tip: "Control end-range"},
			{Exercise: "Ab Wheel Rollout", Sets: 3, Reps: reps(10, 15), Category: CategoryCore, Icon: "🛞", Tip: "Ribs down"},
			{Exercise: "Suitcase Carry (steps)", Sets: 3, Duration: 40, Category: CategoryCoreGrip, Icon: "🧳", Tip: "Anti-lean"},
		},
	},
}

// DefaultCatalog returns the PPL A/B split.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(SplitName, splitDays)
	if err != nil {
		panic(err)
	}
	return c
}
