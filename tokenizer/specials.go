package tokenizer

// Special token ids. IDs are fixed by registration order and must not change:
// persisted models and downstream consumers rely on them.
const (
	TokPad uint32 = 0
	TokEOS uint32 = 1
	TokBOS uint32 = 2
	TokUnk uint32 = 3
	TokNum uint32 = 4
	TokEng uint32 = 5
)

// specialSurfaces lists the special token surfaces in registration order.
// Index equals token id.
var specialSurfaces = []string{
	"<pad>",
	"<eos>",
	"<bos>",
	"<unk>",
	"<num>",
	"<eng>",
}

// corpusMarkers maps the placeholder markers that upstream cleaning leaves
// verbatim in corpus text to their special ids. Other specials never occur
// in cleaned input.
var corpusMarkers = map[string]uint32{
	"<num>": TokNum,
	"<eng>": TokEng,
}

// SpecialTokens returns the special token surfaces in id order.
func SpecialTokens() []string {
	out := make([]string, len(specialSurfaces))
	copy(out, specialSurfaces)
	return out
}
