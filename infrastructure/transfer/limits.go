package transfer

import "golang.org/x/crypto/chacha20poly1305"

// maxPathFrameLen bounds the relative-path string frame; well beyond any
// realistic path, it exists only to stop a corrupt or hostile peer from
// making the receiver allocate an unbounded buffer.
const maxPathFrameLen = 1 << 16

// maxCiphertextFrameLen bounds a single chunk frame: a full plaintext
// chunk plus the AEAD tag.
const maxCiphertextFrameLen = ChunkSize + chacha20poly1305.Overhead
