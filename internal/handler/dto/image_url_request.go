package dto

type ImageURLQuery struct {
	ResourceType string `query:"resourceType"`
	ID           string `query:"id"`
	Filename     string `query:"filename"`
	ImageType    string `query:"imageType"`
}

type LegacyImageURLParams struct {
	ResourceType string `param:"resourceType"`
	Slug         string `param:"slug"`
	ImageType    string `query:"imageType"`
}
