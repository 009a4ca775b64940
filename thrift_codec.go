package miniparquet

import "github.com/apache/thrift/lib/go/thrift"

// thriftStruct is satisfied by every struct type in package parquet: a
// self-delimiting, deterministic Thrift Compact Protocol encoder.
type thriftStruct interface {
	Write(p thrift.TProtocol) error
}

// thriftCodec is a thin adapter over github.com/apache/thrift: a single
// in-memory transport reused across every header and footer emission,
// drained into the output file and reset after each use.
type thriftCodec struct {
	buf   *thrift.TMemoryBuffer
	proto thrift.TProtocol
}

func newThriftCodec() *thriftCodec {
	buf := thrift.NewTMemoryBufferLen(64 * 1024)
	factory := thrift.NewTCompactProtocolFactory()
	return &thriftCodec{
		buf:   buf,
		proto: factory.GetProtocol(buf),
	}
}

// encode serializes s with the Thrift Compact Protocol and returns a copy
// of the resulting bytes, draining and resetting the shared transport for
// the next call.
func (c *thriftCodec) encode(s thriftStruct) ([]byte, error) {
	if err := s.Write(c.proto); err != nil {
		return nil, err
	}
	if err := c.proto.Flush(); err != nil {
		return nil, err
	}
	out := append([]byte(nil), c.buf.Bytes()...)
	c.buf.Reset()
	return out, nil
}
