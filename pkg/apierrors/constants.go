package apierrors

const (
	MsgFailListTask       = "failListTasks"
	MsgFailGetTask        = "failGetTask"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidPriority    = "invalidPriority"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailCompleteTask   = "failCompleteTask"

	MsgInvalidOperand     = "invalidOperand"
	MsgDivisionByZero     = "divisionByZero"
	MsgNegativeSquareRoot = "negativeSquareRoot"
	MsgNegativeFactorial  = "negativeFactorial"
	MsgFactorialOverflow  = "factorialOverflow"
	MsgResultNotFinite    = "resultNotFinite"
	MsgFailCalculation    = "failCalculation"
)
