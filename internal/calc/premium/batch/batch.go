package batch

import (
	"fmt"

	"Kelvin/internal/calc/chiller"
)

type ChillerBatchInput struct {
	Items []chiller.Input `json:"items"`
}

type ChillerBatchResult struct {
	Results []chiller.Result `json:"results"`
}

// CalculateChiller runs the chiller metrics over a set of readings. The
// first bad reading fails the batch; callers get all results or none.
func CalculateChiller(in ChillerBatchInput) (ChillerBatchResult, error) {
	if len(in.Items) == 0 {
		return ChillerBatchResult{}, fmt.Errorf("no items")
	}
	out := ChillerBatchResult{Results: make([]chiller.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := chiller.Calculate(item)
		if err != nil {
			return ChillerBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
