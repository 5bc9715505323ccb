// Copyright (c) 2025 NgKore Community
// SPDX-License-Identifier: AGPL-3.0-or-later

package analysis

import "github.com/ngkore/jostle-bc-crypto-benchmarking/internal/results"

// suiteFixture builds a results document resembling a full harness run:
// all three suites, both providers on most measurements, one single-sided
// measurement, and an ECB group with two paddings.
func suiteFixture() []results.RawResult {
	var records []results.RawResult

	add := func(benchmark, mode, provider string, params map[string]string, score float64) {
		p := map[string]string{"providerName": provider}
		for k, v := range params {
			p[k] = v
		}
		records = append(records, makeRaw(benchmark, mode, p, score))
	}

	both := func(benchmark, mode string, params map[string]string, bcScore, jostleScore float64) {
		add(benchmark, mode, "BC", params, bcScore)
		add(benchmark, mode, "Jostle", params, jostleScore)
	}

	const (
		aes = "com.benchmark.SymmetricBenchmark.Aes.encrypt"
		sm4 = "com.benchmark.SymmetricBenchmark.Sm4.encrypt"
	)

	// Symmetric: AES-GCM at two key sizes, AES-ECB with two paddings,
	// SM4-CBC with only a baseline measurement.
	both(aes, "thrpt", map[string]string{"keySize": "128", "transform": "AES/GCM/NoPadding"}, 100, 140)
	both(aes, "thrpt", map[string]string{"keySize": "256", "transform": "AES/GCM/NoPadding"}, 90, 126)
	both(aes, "thrpt", map[string]string{"keySize": "128", "transform": "AES/ECB/PKCS5Padding"}, 210, 231)
	both(aes, "thrpt", map[string]string{"keySize": "128", "transform": "AES/ECB/NoPadding"}, 220, 238)
	add(sm4, "thrpt", "BC", map[string]string{"keySize": "128", "transform": "SM4/CBC/PKCS5Padding"}, 55)

	// KDF: PBKDF2 over two hash/iteration combinations plus scrypt.
	kdf := "com.benchmark.KdfBenchmark.Pbkdf2.deriveKey"
	both(kdf, "avgt", map[string]string{"algorithm": "PBKDF2WithHmacSHA256", "iterations": "1000"}, 2.1, 1.4)
	both(kdf, "avgt", map[string]string{"algorithm": "PBKDF2WithHmacSHA256", "iterations": "10000"}, 21, 14)
	both(kdf, "avgt", map[string]string{"algorithm": "PBKDF2WithHmacSHA512", "iterations": "1000"}, 3.4, 2.2)
	both("com.benchmark.KdfBenchmark.Scrypt.deriveKey", "avgt", map[string]string{"N": "16384"}, 95, 61)

	// PQC: signatures and KEM.
	both("com.benchmark.PqcBenchmark.MlDsa.sign", "thrpt", map[string]string{"algorithm": "ML-DSA-65"}, 1200, 1500)
	both("com.benchmark.PqcBenchmark.MlDsa.verify", "thrpt", map[string]string{"algorithm": "ML-DSA-65"}, 3100, 3400)
	both("com.benchmark.PqcBenchmark.MlKem.keyGen", "thrpt", map[string]string{"algorithm": "ML-KEM-768"}, 8200, 9100)

	return records
}

// analyzeFixture runs the full pipeline over the suite fixture.
func analyzeFixture() *Report {
	return Analyze(suiteFixture())
}
