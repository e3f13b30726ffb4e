package ports

import "github.com/tim-tx/cello-utils/internal/types"

type DuplicatePolicyPort interface {
	Action(context types.DuplicateContext) types.DuplicateAction
}
