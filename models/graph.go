package models

import "github.com/shopspring/decimal"

// Graph key selectors for the flow graph builder.
const (
	KeyByName   = "name"
	KeyByBranch = "branch"
)

// FlowNode is one party in the flow graph. Position is set only when the
// graph is keyed by branch location.
type FlowNode struct {
	Key      string      `json:"key"`
	Position *Coordinate `json:"position,omitempty"`
}

// FlowEdge is one transfer. Repeated (source, target) pairs stay separate
// edges; consumers that want aggregated flow sum them. VisualWeight is the
// log-compressed line width shared by the map and network renderers.
type FlowEdge struct {
	Source       string          `json:"source"`
	Target       string          `json:"target"`
	SenderName   string          `json:"senderName"`
	ReceiverName string          `json:"receiverName"`
	Amount       decimal.Decimal `json:"amount"`
	VisualWeight float64         `json:"visualWeight"`
}

// FlowGraph is the directed multigraph of money movement consumed by the
// geographic map and the network view. Warnings collects rows skipped for
// malformed branch locations.
type FlowGraph struct {
	KeyedBy  string     `json:"keyedBy"`
	Nodes    []FlowNode `json:"nodes"`
	Edges    []FlowEdge `json:"edges"`
	Warnings []string   `json:"warnings,omitempty"`
}

// SankeyLink is one drawn link: indexes into SankeyData.Labels plus the
// transfer amount. Parallel links between the same pair render additively.
type SankeyLink struct {
	Source int             `json:"source"`
	Target int             `json:"target"`
	Value  decimal.Decimal `json:"value"`
}

// SankeyData feeds the cash-flow diagram.
type SankeyData struct {
	Labels []string     `json:"labels"`
	Links  []SankeyLink `json:"links"`
}
