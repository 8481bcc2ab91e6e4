package commands

import (
	"fmt"
	"strconv"
	"strings"

	"taskboard/internal/model"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeSearch   Type = "search"
	TypeDone     Type = "done"
	TypePriority Type = "priority"
	TypeDelete   Type = "delete"
	TypeClear    Type = "clear"
	TypeSummary  Type = "summary"
	TypeReload   Type = "reload"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Description string
}

type SearchArgs struct {
	Term string
}

type DoneArgs struct {
	TaskID string
}

type PriorityArgs struct {
	TaskID   string
	Priority model.Priority
}

type DeleteArgs struct {
	TaskID string
}

type Command struct {
	Type     Type
	Raw      string
	Add      *AddArgs
	Search   *SearchArgs
	Done     *DoneArgs
	Priority *PriorityArgs
	Delete   *DeleteArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Term: strings.Join(args, " ")}}, nil
	case TypeDone:
		return parseSingleID(input, TypeDone, args)
	case TypePriority:
		return parsePriority(input, args)
	case TypeDelete:
		return parseSingleID(input, TypeDelete, args)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	case TypeSummary:
		return Command{Type: TypeSummary, Raw: input}, nil
	case TypeReload:
		return Command{Type: TypeReload, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a description"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Description: description}}, nil
}

func parseSingleID(raw string, t Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task id", t)}
	}
	switch t {
	case TypeDone:
		return Command{Type: t, Raw: raw, Done: &DoneArgs{TaskID: args[0]}}, nil
	default:
		return Command{Type: t, Raw: raw, Delete: &DeleteArgs{TaskID: args[0]}}, nil
	}
}

func parsePriority(raw string, args []string) (Command, error) {
	if len(args) != 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "priority requires a task id and a value"}
	}
	v, err := strconv.Atoi(args[1])
	if err != nil || !model.Priority(v).IsValid() {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("priority value must be 1, 2 or 3, got %q", args[1])}
	}
	return Command{Type: TypePriority, Raw: raw, Priority: &PriorityArgs{TaskID: args[0], Priority: model.Priority(v)}}, nil
}
