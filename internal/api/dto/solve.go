package dto

import "time"

type CityDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type SolveRequest struct {
	Dataset    string    `json:"dataset"`
	Cities     []CityDTO `json:"cities"`
	Iterations int       `json:"iterations"`
	Neighbors  int       `json:"neighbors"`
	Workers    int       `json:"workers"`
	Seed       *int64    `json:"seed"`
}

type RunResponse struct {
	RunID      int64     `json:"run_id"`
	Dataset    string    `json:"dataset"`
	Iterations int       `json:"iterations"`
	Neighbors  int       `json:"neighbors"`
	Seed       int64     `json:"seed"`
	Distance   float64   `json:"distance"`
	Tour       []CityDTO `json:"tour"`
	CreatedAt  time.Time `json:"created_at"`
}

type SolveResponse struct {
	RunResponse
	Cached       bool `json:"cached"`
	Restarts     int  `json:"restarts"`
	Improvements int  `json:"improvements"`
}

type ListRunsResponse struct {
	Runs []RunResponse `json:"runs"`
}

type ListDatasetsResponse struct {
	Datasets []string `json:"datasets"`
}
