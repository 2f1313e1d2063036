package transfer

import (
	"bytes"
	"net"
	"sync"
	"testing"

	coreerrors "github.com/samir0909/flyingcarpet/domain/errors"
	"github.com/samir0909/flyingcarpet/infrastructure/cryptography/chacha20"
	"github.com/samir0909/flyingcarpet/infrastructure/keyderivation"
)

type noopUI struct {
	mu       sync.Mutex
	percents []int
}

func (u *noopUI) Output(string)      {}
func (u *noopUI) ShowProgressBar()    {}
func (u *noopUI) EnableUI()          {}
func (u *noopUI) ShowPIN(string)     {}
func (u *noopUI) UpdateProgressBar(percent int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.percents = append(u.percents, percent)
}

func runTransfer(t *testing.T, passphrase string, paths []string, fs *memFS) (destRoot string, sendErr, recvErr error) {
	t.Helper()

	senderConn, receiverConn := net.Pipe()
	defer senderConn.Close()
	defer receiverConn.Close()

	d := keyderivation.Derive(passphrase)
	senderCipher, err := chacha20.New(d.Key)
	if err != nil {
		t.Fatalf("New sender cipher: %v", err)
	}
	receiverCipher, err := chacha20.New(d.Key)
	if err != nil {
		t.Fatalf("New receiver cipher: %v", err)
	}

	const dest = "/dest"

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sendErr = Send(senderConn, fs, senderCipher, paths, &noopUI{})
	}()
	go func() {
		defer wg.Done()
		recvErr = Receive(receiverConn, fs, receiverCipher, dest, &noopUI{})
	}()
	wg.Wait()

	return dest, sendErr, recvErr
}

func TestTransfer_S1_SingleSmallFile(t *testing.T) {
	fs := newMemFS()
	fs.put("/tmp/a.txt", []byte("hello\n"))

	dest, sendErr, recvErr := runTransfer(t, "hunter22hunter22", []string{"/tmp/a.txt"}, fs)
	if sendErr != nil {
		t.Fatalf("Send: %v", sendErr)
	}
	if recvErr != nil {
		t.Fatalf("Receive: %v", recvErr)
	}

	got, ok := fs.get(dest, "a.txt")
	if !ok {
		t.Fatal("a.txt was not written")
	}
	if !bytes.Equal(got, []byte("hello\n")) {
		t.Fatalf("a.txt content = %q, want %q", got, "hello\n")
	}
}

func TestTransfer_S2_ChunkBoundary(t *testing.T) {
	const size = 2_500_000
	content := bytes.Repeat([]byte{0x5A}, size)

	fs := newMemFS()
	fs.put("/tmp/big.bin", content)

	dest, sendErr, recvErr := runTransfer(t, "hunter22hunter22", []string{"/tmp/big.bin"}, fs)
	if sendErr != nil {
		t.Fatalf("Send: %v", sendErr)
	}
	if recvErr != nil {
		t.Fatalf("Receive: %v", recvErr)
	}

	got, ok := fs.get(dest, "big.bin")
	if !ok {
		t.Fatal("big.bin was not written")
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("big.bin mismatch: got %d bytes, want %d bytes", len(got), len(content))
	}
}

func TestTransfer_S3_MultiFileCommonPrefix(t *testing.T) {
	fs := newMemFS()
	fs.put("/a/b/c.txt", []byte("c"))
	fs.put("/a/b/d.txt", []byte("d"))
	fs.put("/a/e.txt", []byte("e"))

	dest, sendErr, recvErr := runTransfer(t, "hunter22hunter22",
		[]string{"/a/b/c.txt", "/a/b/d.txt", "/a/e.txt"}, fs)
	if sendErr != nil {
		t.Fatalf("Send: %v", sendErr)
	}
	if recvErr != nil {
		t.Fatalf("Receive: %v", recvErr)
	}

	for relPath, want := range map[string]string{
		"b/c.txt": "c",
		"b/d.txt": "d",
		"e.txt":   "e",
	} {
		got, ok := fs.get(dest, relPath)
		if !ok {
			t.Fatalf("%s was not written", relPath)
		}
		if string(got) != want {
			t.Fatalf("%s content = %q, want %q", relPath, got, want)
		}
	}
}

func TestTransfer_S5_WrongPassphraseFailsIntegrity(t *testing.T) {
	fs := newMemFS()
	fs.put("/tmp/a.txt", []byte("hello\n"))

	senderConn, receiverConn := net.Pipe()
	defer senderConn.Close()
	defer receiverConn.Close()

	senderCipher, _ := chacha20.New(keyderivation.Derive("A").Key)
	receiverCipher, _ := chacha20.New(keyderivation.Derive("B").Key)

	var sendErr, recvErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sendErr = Send(senderConn, fs, senderCipher, []string{"/tmp/a.txt"}, &noopUI{})
	}()
	go func() {
		defer wg.Done()
		recvErr = Receive(receiverConn, fs, receiverCipher, "/dest", &noopUI{})
		// A real session's orchestrator tears down the TCP stream on any
		// exit path; simulate that here so the sender's blocked read for
		// the completion ack unblocks with a network error instead of
		// hanging forever.
		_ = receiverConn.Close()
	}()
	wg.Wait()

	if recvErr == nil {
		t.Fatal("expected receiver to fail integrity check")
	}
	if _, ok := recvErr.(coreerrors.Integrity); !ok {
		t.Fatalf("expected coreerrors.Integrity, got %T: %v", recvErr, recvErr)
	}
	if sendErr == nil {
		t.Fatal("expected sender to observe the closed connection while awaiting the completion ack")
	}
}

func TestValidateRelativePath_RejectsParentReferences(t *testing.T) {
	cases := []string{"../escape.txt", "a/../../b.txt", "..", "/abs/path.txt"}
	for _, c := range cases {
		if err := validateRelativePath(c); err == nil {
			t.Errorf("validateRelativePath(%q) = nil, want error", c)
		}
	}
}

func TestValidateRelativePath_AcceptsCleanRelativePaths(t *testing.T) {
	cases := []string{"a.txt", "b/c.txt", "nested/deeper/d.txt"}
	for _, c := range cases {
		if err := validateRelativePath(c); err != nil {
			t.Errorf("validateRelativePath(%q) = %v, want nil", c, err)
		}
	}
}

func TestCommonAncestor_TiesKeepIncumbent(t *testing.T) {
	got := commonAncestor([]string{"/a/b/c.txt", "/a/b/d.txt", "/a/e.txt"})
	if got != "/a" {
		t.Fatalf("commonAncestor = %q, want %q", got, "/a")
	}

	// Equal component counts: the first-seen parent stays the candidate.
	tie := commonAncestor([]string{"/a/b/c.txt", "/a/x/d.txt"})
	if tie != "/a/b" {
		t.Fatalf("commonAncestor (tie) = %q, want %q", tie, "/a/b")
	}
}
