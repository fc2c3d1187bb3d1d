package services

import (
	"math"

	"bankflow/backend/models"
)

// flowWeightScale compresses the heavy-tailed amount distribution into a
// usable line width: visual weight = log(1 + amount/flowWeightScale). Both
// the map and the network view must use this graph's weights so the two
// renderings never disagree on thickness.
const flowWeightScale = 1000.0

// BuildFlowGraph builds the directed multigraph of money movement over the
// filtered rows. keyBy selects node identity: models.KeyByName for the
// network view, models.KeyByBranch for the geographic view (branch nodes
// carry parsed coordinates).
//
// One edge is emitted per row; repeated (source, target) pairs are not
// merged. Rows whose branch location cannot be parsed are skipped with a
// collected warning instead of aborting the whole graph.
func BuildFlowGraph(rows []models.Transaction, keyBy string) models.FlowGraph {
	graph := models.FlowGraph{
		KeyedBy: keyBy,
		Nodes:   []models.FlowNode{},
		Edges:   []models.FlowEdge{},
	}

	seen := make(map[string]struct{})
	addNode := func(key string, pos *models.Coordinate) {
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		graph.Nodes = append(graph.Nodes, models.FlowNode{Key: key, Position: pos})
	}

	for _, row := range rows {
		var sourceKey, targetKey string
		var sourcePos, targetPos *models.Coordinate

		switch keyBy {
		case models.KeyByBranch:
			sourceCoord, err := models.ParseCoordinate(row.Sender.Branch)
			if err != nil {
				graph.Warnings = append(graph.Warnings, err.Error())
				continue
			}
			targetCoord, err := models.ParseCoordinate(row.Receiver.Branch)
			if err != nil {
				graph.Warnings = append(graph.Warnings, err.Error())
				continue
			}
			sourceKey, targetKey = row.Sender.Branch, row.Receiver.Branch
			sourcePos, targetPos = &sourceCoord, &targetCoord
		default:
			sourceKey, targetKey = row.Sender.Name, row.Receiver.Name
		}

		addNode(sourceKey, sourcePos)
		addNode(targetKey, targetPos)

		graph.Edges = append(graph.Edges, models.FlowEdge{
			Source:       sourceKey,
			Target:       targetKey,
			SenderName:   row.Sender.Name,
			ReceiverName: row.Receiver.Name,
			Amount:       row.Amount,
			VisualWeight: visualWeight(row.Amount.InexactFloat64()),
		})
	}

	return graph
}

func visualWeight(amount float64) float64 {
	return math.Log1p(amount / flowWeightScale)
}
