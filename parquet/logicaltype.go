package parquet

import "github.com/apache/thrift/lib/go/thrift"

// StringType marks a BYTE_ARRAY column as holding UTF-8 text. It carries no
// fields of its own.
type StringType struct{}

func (s *StringType) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("StringType"); err != nil {
		return err
	}
	if err := p.WriteFieldStop(); err != nil {
		return err
	}
	return p.WriteStructEnd()
}

func (s *StringType) Read(p thrift.TProtocol) error {
	if _, err := p.ReadStructBegin(); err != nil {
		return err
	}
	for {
		_, fieldTypeID, _, err := p.ReadFieldBegin()
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		if err := p.Skip(fieldTypeID); err != nil {
			return err
		}
		if err := p.ReadFieldEnd(); err != nil {
			return err
		}
	}
	return p.ReadStructEnd()
}

// IntType describes an integer logical type's bit width and signedness.
type IntType struct {
	BitWidth int8
	IsSigned bool
}

func (t *IntType) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("IntType"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("bitWidth", thrift.BYTE, 1); err != nil {
		return err
	}
	if err := p.WriteByte(t.BitWidth); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("isSigned", thrift.BOOL, 2); err != nil {
		return err
	}
	if err := p.WriteBool(t.IsSigned); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldStop(); err != nil {
		return err
	}
	return p.WriteStructEnd()
}

func (t *IntType) Read(p thrift.TProtocol) error {
	if _, err := p.ReadStructBegin(); err != nil {
		return err
	}
	for {
		_, fieldTypeID, id, err := p.ReadFieldBegin()
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := p.ReadByte()
			if err != nil {
				return err
			}
			t.BitWidth = v
		case 2:
			v, err := p.ReadBool()
			if err != nil {
				return err
			}
			t.IsSigned = v
		default:
			if err := p.Skip(fieldTypeID); err != nil {
				return err
			}
		}
		if err := p.ReadFieldEnd(); err != nil {
			return err
		}
	}
	return p.ReadStructEnd()
}

// LogicalType is a thrift union: exactly one of STRING or INTEGER is set for
// the logical types this core understands. Other variants of the real
// parquet.thrift union are not represented; an implementation that needs
// them would add fields here the same way.
type LogicalType struct {
	STRING  *StringType
	INTEGER *IntType
}

func (l *LogicalType) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("LogicalType"); err != nil {
		return err
	}
	if l.STRING != nil {
		if err := p.WriteFieldBegin("STRING", thrift.STRUCT, 1); err != nil {
			return err
		}
		if err := l.STRING.Write(p); err != nil {
			return err
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if l.INTEGER != nil {
		if err := p.WriteFieldBegin("INTEGER", thrift.STRUCT, 10); err != nil {
			return err
		}
		if err := l.INTEGER.Write(p); err != nil {
			return err
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if err := p.WriteFieldStop(); err != nil {
		return err
	}
	return p.WriteStructEnd()
}

func (l *LogicalType) Read(p thrift.TProtocol) error {
	if _, err := p.ReadStructBegin(); err != nil {
		return err
	}
	for {
		_, fieldTypeID, id, err := p.ReadFieldBegin()
		if err != nil {
			return err
		}
		if fieldTypeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			l.STRING = &StringType{}
			if err := l.STRING.Read(p); err != nil {
				return err
			}
		case 10:
			l.INTEGER = &IntType{}
			if err := l.INTEGER.Read(p); err != nil {
				return err
			}
		default:
			if err := p.Skip(fieldTypeID); err != nil {
				return err
			}
		}
		if err := p.ReadFieldEnd(); err != nil {
			return err
		}
	}
	return p.ReadStructEnd()
}
