package serve

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/notation"
	"github.com/tictactician/tictactician/pb"
	"github.com/tictactician/tictactician/symmetry"
)

// server answers RPCs with engines that share one memo table.
type server struct {
	cfg ai.MinimaxConfig
}

func newServer(cfg ai.MinimaxConfig) *server {
	if !cfg.NoTable && cfg.Table == nil {
		cfg.Table = ai.NewTable()
	}
	return &server{cfg: cfg}
}

func (s *server) Analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeResponse, error) {
	b, toMove, err := notation.ParseBoard(req.Board)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	var resp pb.AnalyzeResponse
	over, outcome := b.IsTerminal()
	resp.Outcome = outcome.String()
	if over {
		resp.GameOver = true
		resp.Value = int32(outcome.Score())
		return &resp, nil
	}

	a := ai.NewMinimax(s.cfg).Analyze(ctx, b, toMove)
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	resp.Move = notation.FormatCell(a.Move)
	resp.Value = int32(a.Value)
	for _, c := range a.Candidates {
		resp.Candidates = append(resp.Candidates, notation.FormatCell(c))
	}
	for _, mv := range a.Moves {
		resp.Moves = append(resp.Moves, &pb.MoveValue{
			Cell:  notation.FormatCell(mv.Cell),
			Value: int32(mv.Value),
		})
	}
	resp.Visited = a.Stats.Visited
	return &resp, nil
}

func (s *server) Canonicalize(ctx context.Context, req *pb.CanonicalizeRequest) (*pb.CanonicalizeResponse, error) {
	b, toMove, err := notation.ParseBoard(req.Board)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	k := symmetry.Canonical(b, toMove)
	return &pb.CanonicalizeResponse{
		Board: notation.FormatBoard(k.B, k.ToMove),
	}, nil
}
