package engine

import "strings"

// Container is one row of `docker ps --format json` output.
type Container struct {
	ID     string `json:"ID"`
	Name   string `json:"Names"`
	Image  string `json:"Image"`
	Status string `json:"Status"`
	Ports  string `json:"Ports"`
}

// IsRunning reports whether the container status indicates a live container.
func (c Container) IsRunning() bool {
	return strings.Contains(c.Status, "Up")
}

// Image is one row of `docker images --format json` output.
type Image struct {
	ID         string `json:"ID"`
	Repository string `json:"Repository"`
	Tag        string `json:"Tag"`
	Size       string `json:"Size"`
	Created    string `json:"CreatedAt"`
}

// Reference returns the repo:tag form used to address the image.
func (i Image) Reference() string {
	return i.Repository + ":" + i.Tag
}

// Stats is one row of `docker stats --no-stream --format json` output.
type Stats struct {
	Name          string `json:"Name"`
	CPUPercent    string `json:"CPUPerc"`
	MemoryUsage   string `json:"MemUsage"`
	MemoryPercent string `json:"MemPerc"`
	NetworkIO     string `json:"NetIO"`
	BlockIO       string `json:"BlockIO"`
}

// Network is one row of `docker network ls --format json` output.
type Network struct {
	ID     string `json:"ID"`
	Name   string `json:"Name"`
	Driver string `json:"Driver"`
	Scope  string `json:"Scope"`
}

// Volume is one row of `docker volume ls --format json` output.
type Volume struct {
	Name       string `json:"Name"`
	Driver     string `json:"Driver"`
	Mountpoint string `json:"Mountpoint"`
}

// containerSizeRow carries just the size column of `docker ps -s` output.
type containerSizeRow struct {
	Size string `json:"Size"`
}
