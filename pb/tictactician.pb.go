// Message types for tictactician.proto.

package pb

import (
	proto "github.com/golang/protobuf/proto"
)

type AnalyzeRequest struct {
	Board                string   `protobuf:"bytes,1,opt,name=board,proto3" json:"board,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AnalyzeRequest) Reset()         { *m = AnalyzeRequest{} }
func (m *AnalyzeRequest) String() string { return proto.CompactTextString(m) }
func (*AnalyzeRequest) ProtoMessage()    {}

func (m *AnalyzeRequest) GetBoard() string {
	if m != nil {
		return m.Board
	}
	return ""
}

type MoveValue struct {
	Cell                 string   `protobuf:"bytes,1,opt,name=cell,proto3" json:"cell,omitempty"`
	Value                int32    `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MoveValue) Reset()         { *m = MoveValue{} }
func (m *MoveValue) String() string { return proto.CompactTextString(m) }
func (*MoveValue) ProtoMessage()    {}

func (m *MoveValue) GetCell() string {
	if m != nil {
		return m.Cell
	}
	return ""
}

func (m *MoveValue) GetValue() int32 {
	if m != nil {
		return m.Value
	}
	return 0
}

type AnalyzeResponse struct {
	Move                 string       `protobuf:"bytes,1,opt,name=move,proto3" json:"move,omitempty"`
	Value                int32        `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	Candidates           []string     `protobuf:"bytes,3,rep,name=candidates,proto3" json:"candidates,omitempty"`
	Moves                []*MoveValue `protobuf:"bytes,4,rep,name=moves,proto3" json:"moves,omitempty"`
	Visited              uint64       `protobuf:"varint,5,opt,name=visited,proto3" json:"visited,omitempty"`
	GameOver             bool         `protobuf:"varint,6,opt,name=game_over,json=gameOver,proto3" json:"game_over,omitempty"`
	Outcome              string       `protobuf:"bytes,7,opt,name=outcome,proto3" json:"outcome,omitempty"`
	XXX_NoUnkeyedLiteral struct{}     `json:"-"`
	XXX_unrecognized     []byte       `json:"-"`
	XXX_sizecache        int32        `json:"-"`
}

func (m *AnalyzeResponse) Reset()         { *m = AnalyzeResponse{} }
func (m *AnalyzeResponse) String() string { return proto.CompactTextString(m) }
func (*AnalyzeResponse) ProtoMessage()    {}

func (m *AnalyzeResponse) GetMove() string {
	if m != nil {
		return m.Move
	}
	return ""
}

func (m *AnalyzeResponse) GetValue() int32 {
	if m != nil {
		return m.Value
	}
	return 0
}

func (m *AnalyzeResponse) GetCandidates() []string {
	if m != nil {
		return m.Candidates
	}
	return nil
}

func (m *AnalyzeResponse) GetMoves() []*MoveValue {
	if m != nil {
		return m.Moves
	}
	return nil
}

func (m *AnalyzeResponse) GetVisited() uint64 {
	if m != nil {
		return m.Visited
	}
	return 0
}

func (m *AnalyzeResponse) GetGameOver() bool {
	if m != nil {
		return m.GameOver
	}
	return false
}

func (m *AnalyzeResponse) GetOutcome() string {
	if m != nil {
		return m.Outcome
	}
	return ""
}

type CanonicalizeRequest struct {
	Board                string   `protobuf:"bytes,1,opt,name=board,proto3" json:"board,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CanonicalizeRequest) Reset()         { *m = CanonicalizeRequest{} }
func (m *CanonicalizeRequest) String() string { return proto.CompactTextString(m) }
func (*CanonicalizeRequest) ProtoMessage()    {}

func (m *CanonicalizeRequest) GetBoard() string {
	if m != nil {
		return m.Board
	}
	return ""
}

type CanonicalizeResponse struct {
	Board                string   `protobuf:"bytes,1,opt,name=board,proto3" json:"board,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CanonicalizeResponse) Reset()         { *m = CanonicalizeResponse{} }
func (m *CanonicalizeResponse) String() string { return proto.CompactTextString(m) }
func (*CanonicalizeResponse) ProtoMessage()    {}

func (m *CanonicalizeResponse) GetBoard() string {
	if m != nil {
		return m.Board
	}
	return ""
}

func init() {
	proto.RegisterType((*AnalyzeRequest)(nil), "tictactician.AnalyzeRequest")
	proto.RegisterType((*MoveValue)(nil), "tictactician.MoveValue")
	proto.RegisterType((*AnalyzeResponse)(nil), "tictactician.AnalyzeResponse")
	proto.RegisterType((*CanonicalizeRequest)(nil), "tictactician.CanonicalizeRequest")
	proto.RegisterType((*CanonicalizeResponse)(nil), "tictactician.CanonicalizeResponse")
}
