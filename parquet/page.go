package parquet

import "github.com/apache/thrift/lib/go/thrift"

// DataPageHeader carries a DATA_PAGE's value count and encoding. This core
// never emits definition or repetition levels (flat, REQUIRED schemas only),
// so DefinitionLevelEncoding and RepetitionLevelEncoding are fixed to RLE,
// matching how writers that never use levels still satisfy the thrift
// struct's required fields.
type DataPageHeader struct {
	NumValues int32
	Encoding  Encoding
}

func (h *DataPageHeader) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("DataPageHeader"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("num_values", thrift.I32, 1); err != nil {
		return err
	}
	if err := p.WriteI32(h.NumValues); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("encoding", thrift.I32, 2); err != nil {
		return err
	}
	if err := p.WriteI32(int32(h.Encoding)); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("definition_level_encoding", thrift.I32, 3); err != nil {
		return err
	}
	if err := p.WriteI32(int32(Encoding_RLE)); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("repetition_level_encoding", thrift.I32, 4); err != nil {
		return err
	}
	if err := p.WriteI32(int32(Encoding_RLE)); err != nil {
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

func (h *DataPageHeader) Read(p thrift.TProtocol) error {
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
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			h.NumValues = v
		case 2:
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			h.Encoding = Encoding(v)
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

// DictionaryPageHeader carries a DICTIONARY_PAGE's cardinality; this core
// always writes it with Encoding_PLAIN.
type DictionaryPageHeader struct {
	NumValues int32
	Encoding  Encoding
}

func (h *DictionaryPageHeader) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("DictionaryPageHeader"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("num_values", thrift.I32, 1); err != nil {
		return err
	}
	if err := p.WriteI32(h.NumValues); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("encoding", thrift.I32, 2); err != nil {
		return err
	}
	if err := p.WriteI32(int32(h.Encoding)); err != nil {
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

func (h *DictionaryPageHeader) Read(p thrift.TProtocol) error {
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
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			h.NumValues = v
		case 2:
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			h.Encoding = Encoding(v)
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

// PageHeader frames every page (dictionary or data) written to a column
// chunk. Exactly one of DataPageHeader or DictionaryPageHeader is set,
// matching h.Type.
type PageHeader struct {
	Type                 PageType
	UncompressedPageSize int32
	CompressedPageSize   int32
	DataPageHeader       *DataPageHeader
	DictionaryPageHeader *DictionaryPageHeader
}

func (h *PageHeader) Write(p thrift.TProtocol) error {
	if err := p.WriteStructBegin("PageHeader"); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("type", thrift.I32, 1); err != nil {
		return err
	}
	if err := p.WriteI32(int32(h.Type)); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("uncompressed_page_size", thrift.I32, 2); err != nil {
		return err
	}
	if err := p.WriteI32(h.UncompressedPageSize); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if err := p.WriteFieldBegin("compressed_page_size", thrift.I32, 3); err != nil {
		return err
	}
	if err := p.WriteI32(h.CompressedPageSize); err != nil {
		return err
	}
	if err := p.WriteFieldEnd(); err != nil {
		return err
	}
	if h.DictionaryPageHeader != nil {
		if err := p.WriteFieldBegin("dictionary_page_header", thrift.STRUCT, 7); err != nil {
			return err
		}
		if err := h.DictionaryPageHeader.Write(p); err != nil {
			return err
		}
		if err := p.WriteFieldEnd(); err != nil {
			return err
		}
	}
	if h.DataPageHeader != nil {
		if err := p.WriteFieldBegin("data_page_header", thrift.STRUCT, 5); err != nil {
			return err
		}
		if err := h.DataPageHeader.Write(p); err != nil {
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

func (h *PageHeader) Read(p thrift.TProtocol) error {
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
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			h.Type = PageType(v)
		case 2:
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			h.UncompressedPageSize = v
		case 3:
			v, err := p.ReadI32()
			if err != nil {
				return err
			}
			h.CompressedPageSize = v
		case 5:
			dph := &DataPageHeader{}
			if err := dph.Read(p); err != nil {
				return err
			}
			h.DataPageHeader = dph
		case 7:
			diph := &DictionaryPageHeader{}
			if err := diph.Read(p); err != nil {
				return err
			}
			h.DictionaryPageHeader = diph
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
