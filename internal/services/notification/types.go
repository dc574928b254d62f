package notification

// Payload is the body posted to the downstream webhook.
type Payload struct {
	Embeds []Embed `json:"embeds"`
}

// Embed is a single rich notification block rendered by the chat service.
type Embed struct {
	// Title is shown in bold at the top of the embed.
	Title string `json:"title"`
	// Color is the embed's side bar color as a decimal RGB value.
	Color int `json:"color"`
	// Timestamp is an ISO-8601 time rendered in the embed footer.
	Timestamp string `json:"timestamp"`
	// Footer is the small text block at the bottom of the embed.
	Footer Footer `json:"footer"`
	// Fields are the name/value rows of the embed, in display order.
	Fields []Field `json:"fields"`
}

// Footer holds the embed footer text.
type Footer struct {
	Text string `json:"text"`
}

// Field is a single name/value row of an embed.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}
