package card_image

type GetImageURLsInput struct {
	Scope string
	Names []string
}

type SaveImageURLInput struct {
	Scope string
	Name  string
	URL   string
}

type ClearScopeInput struct {
	Scope string
}
