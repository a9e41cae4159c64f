package serve

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/tictactician/tictactician/ai"
	"github.com/tictactician/tictactician/pb"
)

func dial(t *testing.T) pb.TictacticianClient {
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	pb.RegisterTictacticianServer(s, newServer(ai.MinimaxConfig{}))
	go s.Serve(lis)
	t.Cleanup(s.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return pb.NewTictacticianClient(conn)
}

func TestAnalyze(t *testing.T) {
	client := dial(t)
	ctx := context.Background()

	resp, err := client.Analyze(ctx, &pb.AnalyzeRequest{Board: ".../.../..."})
	require.NoError(t, err)
	assert.Equal(t, "b2", resp.Move)
	assert.Equal(t, int32(0), resp.Value)
	assert.Len(t, resp.Candidates, 9)
	assert.Len(t, resp.Moves, 9)
	assert.False(t, resp.GameOver)
	assert.NotZero(t, resp.Visited)

	resp, err = client.Analyze(ctx, &pb.AnalyzeRequest{Board: "xx./oo./... o"})
	require.NoError(t, err)
	// The immediate win and the fork are both worth -1; corners
	// come before edges.
	assert.Equal(t, "c3", resp.Move)
	assert.Equal(t, int32(-1), resp.Value)
	assert.ElementsMatch(t, []string{"c3", "c2"}, resp.Candidates)

	resp, err = client.Analyze(ctx, &pb.AnalyzeRequest{Board: "xxx/oo./..."})
	require.NoError(t, err)
	assert.True(t, resp.GameOver)
	assert.Equal(t, "X", resp.Outcome)
	assert.Equal(t, int32(1), resp.Value)
	assert.Empty(t, resp.Move)

	_, err = client.Analyze(ctx, &pb.AnalyzeRequest{Board: "xxxx"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCanonicalize(t *testing.T) {
	client := dial(t)
	ctx := context.Background()

	resp, err := client.Canonicalize(ctx, &pb.CanonicalizeRequest{Board: "x../.../... o"})
	require.NoError(t, err)
	assert.Equal(t, ".../.../..x o", resp.Board)

	other, err := client.Canonicalize(ctx, &pb.CanonicalizeRequest{Board: "..x/.../... o"})
	require.NoError(t, err)
	assert.Equal(t, resp.Board, other.Board)

	_, err = client.Canonicalize(ctx, &pb.CanonicalizeRequest{Board: "bad"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
