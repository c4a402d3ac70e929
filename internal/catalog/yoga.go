package catalog

import (
	"strings"

	"github.com/meltforce/repflow/internal/models"
)

// YogaCategories groups poses by theme. Pose names and difficulty tiers come
// straight from the product's asana catalog.
var YogaCategories = []models.YogaCategory{
	{
		ID:          "standing",
		Name:        "Standing Poses",
		Description: "Build strength, balance, and focus with foundational standing asanas.",
		Poses: []models.YogaPose{
			{Name: "Tadasana", Difficulty: models.DifficultyBeginner},
			{Name: "Uttanasana", Difficulty: models.DifficultyBeginner},
			{Name: "Ardha Uttanasana", Difficulty: models.DifficultyBeginner},
			{Name: "Adho Mukha Svanasana", Difficulty: models.DifficultyBeginner},
			{Name: "Virabhadrasana I", Difficulty: models.DifficultyBeginner},
			{Name: "Virabhadrasana II", Difficulty: models.DifficultyBeginner},
			{Name: "Virabhadrasana III", Difficulty: models.DifficultyIntermediate},
			{Name: "Utkatasana", Difficulty: models.DifficultyBeginner},
			{Name: "Utthita Parsvakonasana", Difficulty: models.DifficultyIntermediate},
			{Name: "Trikonasana", Difficulty: models.DifficultyBeginner},
			{Name: "Ardha Chandrasana (Half Moon)", Difficulty: models.DifficultyIntermediate},
			{Name: "Vrksasana (Tree Pose)", Difficulty: "Beginner / Intermediate"},
			{Name: "Utthita Hasta Padangusthasana", Difficulty: models.DifficultyIntermediate},
		},
	},
	{
		ID:          "seated",
		Name:        "Seated & Forward Bends",
		Description: "Stretch and relax with classic seated and forward bending poses.",
		Poses: []models.YogaPose{
			{Name: "Sukhasana", Difficulty: models.DifficultyBeginner},
			{Name: "Virasana", Difficulty: models.DifficultyBeginner},
			{Name: "Dandasana", Difficulty: models.DifficultyIntermediate},
			{Name: "Paschimottanasana", Difficulty: models.DifficultyBeginner},
			{Name: "Baddha Konasana", Difficulty: models.DifficultyBeginner},
			{Name: "Gomukhasana", Difficulty: models.DifficultyBeginner},
			{Name: "Ardha Matsyendrasana", Difficulty: models.DifficultyIntermediate},
			{Name: "Padmasana", Difficulty: models.DifficultyAdvanced},
		},
	},
	{
		ID:          "twists",
		Name:        "Twists",
		Description: "Detoxify and increase spinal mobility with twisting asanas.",
		Poses: []models.YogaPose{
			{Name: "Supta Matsyendrasana (Supine Twist)", Difficulty: models.DifficultyBeginner},
			{Name: "Ardha Matsyendrasana (Seated Spinal Twist)", Difficulty: models.DifficultyIntermediate},
			{Name: "Parivrtta Utkatasana (Revolved Chair)", Difficulty: models.DifficultyIntermediate},
			{Name: "Parivrtta Trikonasana (Revolved Triangle)", Difficulty: models.DifficultyIntermediate},
			{Name: "Parivrtta Anjaneyasana (Low Lunge Twist)", Difficulty: models.DifficultyIntermediate},
		},
	},
	{
		ID:          "balancing",
		Name:        "Balancing Poses",
		Description: "Challenge your stability and focus with balancing postures.",
		Poses: []models.YogaPose{
			{Name: "Vrksasana (Tree Pose)", Difficulty: "Beginner / Intermediate"},
			{Name: "Ardha Chandrasana (Half Moon)", Difficulty: models.DifficultyIntermediate},
			{Name: "Eka Pada Galavasana (Flying Pigeon)", Difficulty: models.DifficultyAdvanced},
			{Name: "Svarga Dvijasana (Bird of Paradise)", Difficulty: models.DifficultyAdvanced},
			{Name: "Eka Pada Bakasana (One-Leg Crow)", Difficulty: models.DifficultyAdvanced},
		},
	},
	{
		ID:          "core-arm",
		Name:        "Core & Arm Strength",
		Description: "Build core and arm power with challenging strength poses.",
		Poses: []models.YogaPose{
			{Name: "Bakasana (Crow Pose)", Difficulty: models.DifficultyIntermediate},
			{Name: "Chaturanga Dandasana", Difficulty: models.DifficultyIntermediate},
			{Name: "Navasana (Boat Pose)", Difficulty: models.DifficultyIntermediate},
			{Name: "Forearm Plank", Difficulty: models.DifficultyAdvanced},
			{Name: "Vasisthasana (Side Plank)", Difficulty: models.DifficultyIntermediate},
			{Name: "Astavakrasana (Eight Angle Pose)", Difficulty: models.DifficultyAdvanced},
			{Name: "Hollow Body Hold", Difficulty: models.DifficultyAdvanced},
		},
	},
	{
		ID:          "backbends",
		Name:        "Backbends",
		Description: "Open your heart and spine with energizing backbends.",
		Poses: []models.YogaPose{
			{Name: "Bhujangasana (Cobra)", Difficulty: models.DifficultyBeginner},
			{Name: "Ustrasana (Camel Pose)", Difficulty: models.DifficultyIntermediate},
			{Name: "Chakrasana (Wheel)", Difficulty: models.DifficultyAdvanced},
			{Name: "Setu Bandhasana (Bridge)", Difficulty: models.DifficultyBeginner},
			{Name: "Salabhasana (Locust)", Difficulty: models.DifficultyBeginner},
			{Name: "Natarajasana (Dancer Pose)", Difficulty: models.DifficultyIntermediate},
			{Name: "Camatkarasana (Wild Thing)", Difficulty: models.DifficultyIntermediate},
		},
	},
	{
		ID:          "inversions",
		Name:        "Inversions",
		Description: "Flip your perspective and build confidence with inversions.",
		Poses: []models.YogaPose{
			{Name: "Sarvangasana (Shoulder Stand)", Difficulty: models.DifficultyBeginner},
			{Name: "Halasana (Plow Pose)", Difficulty: models.DifficultyBeginner},
			{Name: "Sirsasana (Headstand)", Difficulty: models.DifficultyAdvanced},
			{Name: "Pincha Mayurasana (Forearm Stand)", Difficulty: models.DifficultyAdvanced},
			{Name: "Adho Mukha Vrksasana (Handstand)", Difficulty: models.DifficultyAdvanced},
		},
	},
	{
		ID:          "restorative",
		Name:        "Restorative & Yin Poses",
		Description: "Relax, restore, and rejuvenate with gentle and yin postures.",
		Poses: []models.YogaPose{
			{Name: "Viparita Karani (Legs-Up-the-Wall)", Difficulty: models.DifficultyBeginner},
			{Name: "Balasana (Child's Pose)", Difficulty: models.DifficultyBeginner},
			{Name: "Savasana (Corpse Pose)", Difficulty: models.DifficultyBeginner},
			{Name: "Supta Baddha Konasana (Reclining Bound Angle)", Difficulty: models.DifficultyBeginner},
			{Name: "Supported Fish Pose", Difficulty: models.DifficultyIntermediate},
			{Name: "Reclined Butterfly", Difficulty: models.DifficultyBeginner},
		},
	},
}

// YogaPlans holds a guided beginner sequence per weekday, keyed by short day
// name. Durations are suggested hold times in seconds.
var YogaPlans = map[string][]models.YogaPlanPose{
	"mon": {
		{Name: "Easy Pose (Sukhasana)", Difficulty: models.DifficultyBeginner, Purpose: "Centering the body and mind", Explanation: "A basic cross-legged posture that promotes groundedness and breath focus.", Procedure: "Sit on the floor with legs crossed, spine straight, and hands resting on knees. Close your eyes and breathe deeply.", Duration: 60},
		{Name: "Seated Forward Fold (Paschimottanasana)", Difficulty: models.DifficultyBeginner, Purpose: "Stretching spine and hamstrings", Explanation: "Deep forward stretch that calms the nervous system.", Procedure: "Sit with legs extended forward, reach arms up, and fold over legs while keeping spine long.", Duration: 45},
		{Name: "Supine Spinal Twist (Supta Matsyendrasana)", Difficulty: models.DifficultyBeginner, Purpose: "Spinal twist and detoxification", Explanation: "Rotates the spine while stimulating digestion.", Procedure: "Lie on your back, bring one knee across the body, and twist toward the opposite side with outstretched arms.", Duration: 45},
		{Name: "Legs Up the Wall (Viparita Karani)", Difficulty: models.DifficultyBeginner, Purpose: "Circulation improvement", Explanation: "Inversion that reduces fatigue and calms the body.", Procedure: "Lie on your back and extend your legs vertically up a wall, arms resting by your sides.", Duration: 90},
		{Name: "Child's Pose (Balasana)", Difficulty: models.DifficultyBeginner, Purpose: "Full-body relaxation", Explanation: "A restful pose for surrender and calming.", Procedure: "Kneel on the floor, sit on your heels, fold forward, and rest your forehead and arms on the mat.", Duration: 60},
	},
	"tue": {
		{Name: "Mountain Pose (Tadasana)", Difficulty: models.DifficultyBeginner, Purpose: "Foundation of all standing poses", Explanation: "Builds posture awareness and balance.", Procedure: "Stand tall with feet together, arms at sides, lift chest, engage thighs, breathe deeply.", Duration: 30},
		{Name: "Standing Forward Fold (Uttanasana)", Difficulty: models.DifficultyBeginner, Purpose: "Stretches hamstrings and spine", Explanation: "Promotes relaxation and spinal decompression.", Procedure: "Hinge at hips to fold forward, knees soft, hands toward floor or shins.", Duration: 45},
		{Name: "Warrior I (Virabhadrasana I)", Difficulty: models.DifficultyBeginner, Purpose: "Leg strength and hip opening", Explanation: "A grounding lunge that builds focus and stamina.", Procedure: "Step one foot back, bend the front knee, square hips forward, and raise arms overhead.", Duration: 45},
		{Name: "Warrior II (Virabhadrasana II)", Difficulty: models.DifficultyBeginner, Purpose: "Stamina and concentration", Explanation: "Opens hips and chest while strengthening legs.", Procedure: "From a wide stance, bend the front knee, extend arms parallel to the floor, gaze over the front hand.", Duration: 45},
		{Name: "Tree Pose (Vrksasana)", Difficulty: "Beginner / Intermediate", Purpose: "Balance and focus", Explanation: "Single-leg balance that steadies the mind.", Procedure: "Shift weight to one leg, place the other foot on the inner thigh or calf, hands at heart or overhead.", Duration: 30},
	},
	"wed": {
		{Name: "Cat-Cow Flow", Difficulty: models.DifficultyBeginner, Purpose: "Spinal mobility", Explanation: "Gently warms and lubricates the spine.", Procedure: "On hands and knees, inhale to arch the back (cow), exhale to round it (cat). Repeat gently.", Duration: 60},
		{Name: "Downward Dog (Adho Mukha Svanasana)", Difficulty: models.DifficultyBeginner, Purpose: "Full-body stretch", Explanation: "Lengthens the spine and hamstrings while building shoulder strength.", Procedure: "From hands and knees, lift hips up and back into an inverted V, heels reaching toward the floor.", Duration: 45},
		{Name: "Cobra (Bhujangasana)", Difficulty: models.DifficultyBeginner, Purpose: "Gentle backbend", Explanation: "Opens the chest and strengthens the spine.", Procedure: "Lie face down, hands under shoulders, press the chest up while keeping hips grounded.", Duration: 30},
		{Name: "Bridge (Setu Bandhasana)", Difficulty: models.DifficultyBeginner, Purpose: "Back and glute strength", Explanation: "Strengthens the posterior chain and opens the chest.", Procedure: "Lie on your back, feet hip-width, press through heels to lift hips, interlace hands beneath you.", Duration: 45},
	},
	"thu": {
		{Name: "Chair Pose (Utkatasana)", Difficulty: models.DifficultyBeginner, Purpose: "Leg and core strength", Explanation: "A powerful standing squat hold.", Procedure: "Feet together, bend knees as if sitting into a chair, arms reach overhead.", Duration: 30},
		{Name: "Triangle (Trikonasana)", Difficulty: models.DifficultyBeginner, Purpose: "Side-body stretch", Explanation: "Lengthens the side waist and opens the hips.", Procedure: "From a wide stance, hinge over the front leg, lower hand to shin or block, top arm reaches up.", Duration: 45},
		{Name: "Boat Pose (Navasana)", Difficulty: models.DifficultyIntermediate, Purpose: "Core strength", Explanation: "Balances on the sit bones to fire the abdominals.", Procedure: "Seated, lean back slightly, lift legs to a V, arms extended forward.", Duration: 30},
		{Name: "Locust (Salabhasana)", Difficulty: models.DifficultyBeginner, Purpose: "Back strengthening", Explanation: "Strengthens the entire back body.", Procedure: "Lie face down, lift chest, arms, and legs off the floor, gaze slightly forward.", Duration: 30},
	},
	"fri": {
		{Name: "Sun Salutation Hold (Uttanasana)", Difficulty: models.DifficultyBeginner, Purpose: "Warm-up and release", Explanation: "A folded reset between stronger poses.", Procedure: "Fold forward from standing, grasp opposite elbows, sway gently.", Duration: 45},
		{Name: "Crow Pose (Bakasana)", Difficulty: models.DifficultyIntermediate, Purpose: "Arm balance and focus", Explanation: "The gateway arm balance.", Procedure: "Squat, place hands down, knees onto upper arms, shift weight forward until feet lift.", Duration: 20},
		{Name: "Side Plank (Vasisthasana)", Difficulty: models.DifficultyIntermediate, Purpose: "Lateral core strength", Explanation: "Builds oblique and shoulder stability.", Procedure: "From plank, roll onto one hand, stack feet, reach the top arm skyward.", Duration: 20},
		{Name: "Camel (Ustrasana)", Difficulty: models.DifficultyIntermediate, Purpose: "Heart opening", Explanation: "A kneeling backbend that opens the whole front body.", Procedure: "Kneel upright, hands on heels or lower back, arch back and gaze upward.", Duration: 30},
	},
	"sat": {
		{Name: "Pigeon Pose (Eka Pada Rajakapotasana)", Difficulty: models.DifficultyIntermediate, Purpose: "Hip opening", Explanation: "Deep hip and glute release.", Procedure: "Bring front shin across mat while extending back leg, keep torso upright or fold forward.", Duration: 60},
		{Name: "Shoulder Stand (Sarvangasana)", Difficulty: models.DifficultyBeginner, Purpose: "Inversion and circulation", Explanation: "A supported inversion that calms the nervous system.", Procedure: "Lie on your back, lift legs and hips, support the lower back with hands, legs vertical.", Duration: 45},
		{Name: "Plow (Halasana)", Difficulty: models.DifficultyBeginner, Purpose: "Spine and shoulder stretch", Explanation: "A deep fold from the shoulder stand.", Procedure: "From shoulder stand, lower feet overhead toward the floor, keep legs straight.", Duration: 30},
		{Name: "Fish Pose (Matsyasana)", Difficulty: models.DifficultyBeginner, Purpose: "Counter-pose chest opener", Explanation: "Opens the throat and chest after inversions.", Procedure: "Lie back on forearms, arch the chest and rest the crown lightly on the floor.", Duration: 30},
	},
	"sun": {
		{Name: "Reclined Butterfly", Difficulty: models.DifficultyBeginner, Purpose: "Gentle hip release", Explanation: "A passive opener for quiet breathing.", Procedure: "Lie back, soles of feet together, knees wide, arms relaxed at sides.", Duration: 90},
		{Name: "Supported Fish Pose", Difficulty: models.DifficultyIntermediate, Purpose: "Heart and chest opening", Explanation: "Passive chest opener using support.", Procedure: "Lie back on a bolster or block under shoulder blades, arms relaxed out, chest lifted.", Duration: 60},
		{Name: "Legs Up the Wall (Viparita Karani)", Difficulty: models.DifficultyBeginner, Purpose: "Circulation improvement", Explanation: "Inversion that reduces fatigue and calms the body.", Procedure: "Lie on your back and extend your legs vertically up a wall, arms resting by your sides.", Duration: 90},
		{Name: "Corpse Pose (Savasana)", Difficulty: models.DifficultyBeginner, Purpose: "Deep rest", Explanation: "Complete stillness to absorb the practice.", Procedure: "Lie flat on your back, limbs relaxed, eyes closed, natural breath.", Duration: 120},
	},
}

// YogaCategoryByID looks up a yoga category.
func YogaCategoryByID(id string) (models.YogaCategory, bool) {
	for _, c := range YogaCategories {
		if c.ID == id {
			return c, true
		}
	}
	return models.YogaCategory{}, false
}

// YogaPlanForDay returns the guided plan for a short day name ("mon".."sun").
func YogaPlanForDay(short string) ([]models.YogaPlanPose, bool) {
	plan, ok := YogaPlans[strings.ToLower(short)]
	return plan, ok
}
