// Package checkpoint reads and writes model weights in the .seed format.
//
// A .seed file is a small binary container for named tensors:
//
//	Format Structure:
//	  [64 bytes: fixed header]
//	    0x00  Magic "SEED"
//	    0x04  Version (uint32 LE)
//	    0x08  Flags (uint32 LE)
//	    0x0C  Reserved
//	    0x10  Header size (uint64 LE)
//	    0x18  Data size (uint64 LE)
//	    0x20  SHA-256 checksum of the data section
//	  [Header: JSON metadata]
//	  [Tensor data: raw bytes, 64-byte aligned]
//
// Tensors are written in sorted name order, so the file layout never
// depends on map iteration order. float32 tensors can be stored as
// float16 or bfloat16 to halve the file size; they decode back to
// float32 on load.
//
// Example usage:
//
//	// Save
//	err := checkpoint.Save("model.seed", net.StateDict(),
//	    checkpoint.WithModelType("MLP"))
//
//	// Load
//	stateDict, header, err := checkpoint.Load("model.seed")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = net.LoadStateDict(stateDict)
package checkpoint
