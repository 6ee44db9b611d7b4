package mapper

import (
	"github.com/Sofiardb/cicd-demo-csharp/internal/adapter/http/dto"
	"github.com/Sofiardb/cicd-demo-csharp/internal/core/domain"
)

func ToOperationResult(result domain.OperationResult) dto.OperationResult {
	return dto.OperationResult{
		Value1:    result.Value1,
		Value2:    result.Value2,
		Operation: result.Operation,
		Result:    result.Result,
	}
}
