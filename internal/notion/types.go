package notion

// Wire types for the subset of the database query API the homepage reads.
// Property payloads keep JSON null distinct from zero values.

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}

type queryResponse struct {
	Object     string  `json:"object"`
	Results    []page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

type page struct {
	ID         string              `json:"id"`
	Icon       *icon               `json:"icon"`
	Properties map[string]property `json:"properties"`
}

type property struct {
	Type        string         `json:"type"`
	Title       []richText     `json:"title"`
	RichText    []richText     `json:"rich_text"`
	URL         *string        `json:"url"`
	Email       *string        `json:"email"`
	PhoneNumber *string        `json:"phone_number"`
	Number      *float64       `json:"number"`
	Select      *selectOption  `json:"select"`
	MultiSelect []selectOption `json:"multi_select"`
	Date        *dateValue     `json:"date"`
	Files       []fileObject   `json:"files"`
}

type annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color"`
}

type richText struct {
	Type        string      `json:"type"`
	PlainText   string      `json:"plain_text"`
	Href        *string     `json:"href"`
	Annotations annotations `json:"annotations"`
}

type selectOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type dateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end"`
}

type fileLink struct {
	URL string `json:"url"`
}

type fileObject struct {
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	File     *fileLink `json:"file"`
	External *fileLink `json:"external"`
}

type icon struct {
	Type     string    `json:"type"`
	Emoji    string    `json:"emoji"`
	File     *fileLink `json:"file"`
	External *fileLink `json:"external"`
}

type apiError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
