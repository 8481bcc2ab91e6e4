package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Search   func(SearchArgs) (Result, error)
	Done     func(DoneArgs) (Result, error)
	Priority func(PriorityArgs) (Result, error)
	Delete   func(DeleteArgs) (Result, error)
	Clear    func() (Result, error)
	Summary  func() (Result, error)
	Reload   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeSearch:
		if handlers.Search == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Search(*cmd.Search)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Done(*cmd.Done)
	case TypePriority:
		if handlers.Priority == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Priority(*cmd.Priority)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Delete(*cmd.Delete)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Clear()
	case TypeSummary:
		if handlers.Summary == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Summary()
	case TypeReload:
		if handlers.Reload == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Reload()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missingHandler(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
