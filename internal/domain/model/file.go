package model

import "time"

// File describes a single object in the blob store, as shown to the admin
// file manager.
type File struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	ContentType  string    `json:"type,omitempty"`
	URL          string    `json:"url,omitempty"`
}

// StorageStats backs the admin dashboard counters.
type StorageStats struct {
	TotalFiles    int    `json:"totalFiles"`
	StorageUsed   string `json:"storageUsed"`
	ImageCount    int    `json:"imageCount"`
	DocumentCount int    `json:"documentCount"`
}
