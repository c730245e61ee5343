package base

import (
	"testing"

	"github.com/hsdfat8/diam-core/models_base"
)

func benchCER() *CapabilitiesExchangeRequest {
	cer := testCER()
	cer.AuthApplicationId = []models_base.Unsigned32{16777238, 16777251}
	cer.Header.HopByHopID = 1
	cer.Header.EndToEndID = 1
	return cer
}

func BenchmarkCERMarshal(b *testing.B) {
	cer := benchCER()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cer.Marshal(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCERUnmarshal(b *testing.B) {
	data, err := benchCER().Marshal()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var cer CapabilitiesExchangeRequest
		if err := cer.Unmarshal(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDWRMarshal(b *testing.B) {
	dwr := NewDeviceWatchdogRequest()
	dwr.OriginHost = "client.example.com"
	dwr.OriginRealm = "example.com"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dwr.Marshal(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMessage(b *testing.B) {
	data, err := benchCER().Marshal()
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseMessage(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCERMarshalParallel(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		cer := benchCER()
		for pb.Next() {
			if _, err := cer.Marshal(); err != nil {
				b.Fatal(err)
			}
		}
	})
}
