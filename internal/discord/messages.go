package discord

// Friendly message constants for Discord responses
const (
	MsgInvalidInput     = "⚠️ **Check Your Numbers**\nThat squad situation doesn't add up."
	MsgInvalidRunStyle  = "❓ **Unknown Run Style**\nPick safe, balanced or greedy."
	MsgInvalidPlaystyle = "❓ **Unknown Playstyle**\nPick steady, combat, runner or support."
	MsgUnauthorized     = "🔒 **Advisor Rejected The Bot**\nThe bot's API key is not accepted."
	MsgRateLimited      = "⏳ **Whoa there!**\nToo many questions at once. Try again in a bit."
	MsgAdvisorDown      = "🚧 **Advisor Unavailable**\nThe EV advisor is not answering right now."

	MsgGenericError = "❌ Something went wrong."
)

// Embed titles and labels
const (
	TitleRunPlan    = "🗺️ %s Run Plan"
	TitleUnlockPath = "🔓 Unlock Path (%s)"

	FieldDeathChance = "Death chance"
	FieldDanger      = "Danger"
	FieldGain        = "Estimated gain"
	FieldEVStay      = "EV if you leave"
	FieldEVGo        = "EV if you push"
	FieldNotes       = "Notes"

	LabelSquad = "Squad"
	LabelSolo  = "Solo"
	LabelReady = "✅ Ready now"
)
