package graphdocs

// childListing is the raw Graph children collection response.
type childListing struct {
	Value []driveItem `json:"value"`
}

// driveItem is the subset of the Graph driveItem resource we read.
type driveItem struct {
	Name                 string       `json:"name"`
	LastModifiedDateTime string       `json:"lastModifiedDateTime"`
	DownloadURL          string       `json:"@microsoft.graph.downloadUrl"`
	Folder               *folderFacet `json:"folder,omitempty"`
}

// folderFacet marks an item as a folder. Only its presence matters.
type folderFacet struct {
	ChildCount int `json:"childCount"`
}
