package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// ZeroHash is the parent hash sentinel carried by the genesis block, which
// has no real predecessor.
const ZeroHash = "0"

// hashLen is the number of hex characters in a block hash.
const hashLen = 64

// mineProgressInterval is the number of attempts between progress events
// raised by the mining loop.
const mineProgressInterval = 10_000

// =============================================================================

// Block represents a group of transfers batched together with the linkage
// and proof of work metadata for the chain.
type Block struct {
	Number        uint64     `json:"number"`          // Block number in the chain, starting at 0.
	TimeStamp     int64      `json:"timestamp"`       // Time the block was constructed.
	Transfers     []Transfer `json:"transfers"`       // Transfers in this block, order significant for hashing.
	PrevBlockHash string     `json:"prev_block_hash"` // Hash of the previous block in the chain.
	BlockHash     string     `json:"hash"`            // Hash of this block, the proof of work artifact.
	Nonce         uint64     `json:"nonce"`           // Value identified to solve the hash solution.
	Difficulty    uint       `json:"difficulty"`      // Number of leading hex 0's needed to solve the hash solution.
}

// newBlock constructs a new Block with the current timestamp, a zero nonce
// and its initial hash computed. The returned block does not yet satisfy
// the difficulty target; that is the job of Mine.
func newBlock(number uint64, transfers []Transfer, prevBlockHash string, difficulty uint) *Block {
	b := Block{
		Number:        number,
		TimeStamp:     time.Now().UTC().Unix(),
		Transfers:     transfers,
		PrevBlockHash: prevBlockHash,
		Difficulty:    difficulty,
	}
	b.BlockHash = b.Hash()

	return &b
}

// Hash returns the unique hash for the block. The hash is a SHA-256 digest
// of the block number, timestamp, the canonical transfer records in order,
// the parent hash and the nonce, encoded as lowercase hex.
func (b *Block) Hash() string {
	digest := b.digest()
	return hex.EncodeToString(digest[:])
}

// Mine performs the work of finding a nonce that gives the block a hash
// with Difficulty leading hex zero characters. The search is unbounded and
// CPU bound; the expected number of attempts is 16^Difficulty. The context
// is checked every iteration so a caller can cancel the search. Pointer
// semantics are being used since a nonce is being discovered.
func (b *Block) Mine(ctx context.Context, ev EventHandler) error {
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	ev("ledger: mine: blk[%d]: started: difficulty[%d]", b.Number, b.Difficulty)

	// The hot loop works on the raw digest and counts leading zero bits,
	// 4 per required hex character, so no hex encoding happens per attempt.
	for !isDigestSolved(b.Difficulty, b.digest()) {
		if err := ctx.Err(); err != nil {
			ev("ledger: mine: blk[%d]: CANCELLED", b.Number)
			return err
		}

		b.Nonce++
		if b.Nonce%mineProgressInterval == 0 {
			ev("ledger: mine: blk[%d]: attempts[%d]", b.Number, b.Nonce)
		}
	}

	b.BlockHash = b.Hash()
	ev("ledger: mine: blk[%d]: SOLVED: nonce[%d]: hash[%s]", b.Number, b.Nonce, b.BlockHash)

	return nil
}

// =============================================================================

// digest computes the SHA-256 digest over the canonical byte layout of the
// block. This must stay deterministic: validation depends on recomputing
// the exact same digest from the same field values.
func (b *Block) digest() [32]byte {
	data := make([]byte, 0, 256)

	data = strconv.AppendUint(data, b.Number, 10)
	data = strconv.AppendInt(data, b.TimeStamp, 10)
	for _, tx := range b.Transfers {
		data = append(data, tx.Record()...)
	}
	data = append(data, b.PrevBlockHash...)
	data = strconv.AppendUint(data, b.Nonce, 10)

	return sha256.Sum256(data)
}

// isDigestSolved checks a raw digest complies with the POW rules by
// counting leading zero bits, 4 for each required hex character. This is
// exactly equivalent to checking hex characters on the encoded hash.
func isDigestSolved(difficulty uint, digest [32]byte) bool {
	if difficulty > hashLen {
		return false
	}

	for i := uint(0); i < difficulty/2; i++ {
		if digest[i] != 0 {
			return false
		}
	}

	if difficulty%2 != 0 {
		return digest[difficulty/2]>>4 == 0
	}

	return true
}

// isHashSolved checks an encoded hash to make sure it complies with the
// POW rules. We need to match a difficulty number of 0's.
func isHashSolved(difficulty uint, hash string) bool {
	const match = "0000000000000000000000000000000000000000000000000000000000000000"

	if difficulty > hashLen || len(hash) != hashLen {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}
