package keypad

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	keypadv1 "megaCalc/gen/go/keypad/v1"
	"megaCalc/internal/domain"
	"megaCalc/internal/ports"
)

// Server реализует gRPC KeypadService, вызывает use case калькулятора.
// В REST это был бы контроллер/хэндлер; в gRPC тип зовут Server, потому что сгенерированный интерфейс называется KeypadServiceServer (серверная сторона RPC), и реализацию по конвенции называют так же.
type Server struct {
	keypadv1.UnimplementedKeypadServiceServer
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер клавиатуры калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// PressKey применяет одно нажатие к сессии и возвращает дисплей.
// "Error" на дисплее — обычный ответ, не gRPC-ошибка; InvalidArgument — только за клавишу не из одного символа.
func (s *Server) PressKey(ctx context.Context, req *keypadv1.PressKeyRequest) (*keypadv1.PressKeyResponse, error) {
	display, err := s.uc.PressKey(ctx, req.GetSessionId(), req.GetKey())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidKey) {
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		}
		s.log.Error("press key failed", "error", err)
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return &keypadv1.PressKeyResponse{Display: display}, nil
}

// History возвращает завершённые вычисления сессии из use case.
func (s *Server) History(ctx context.Context, req *keypadv1.HistoryRequest) (*keypadv1.HistoryResponse, error) {
	list, err := s.uc.History(ctx, req.GetSessionId())
	if err != nil {
		s.log.Error("history failed", "error", err)
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	items := make([]*keypadv1.HistoryItem, len(list))
	for i, op := range list {
		items[i] = &keypadv1.HistoryItem{
			Id:                int32(op.ID),
			SessionId:         op.SessionID,
			Operand0:          op.Operand0,
			Operand1:          op.Operand1,
			Operator:          op.Operator,
			Result:            op.Result,
			TimestampUnixNano: op.Timestamp.UnixNano(),
		}
	}
	return &keypadv1.HistoryResponse{Items: items}, nil
}
