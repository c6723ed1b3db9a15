// Package pricing computes shipping prices of measured packages.
//
// A price has two competing bases. The weight basis charges the per-kilogram
// rate; the volumetric basis applies to bulky parcels whose length, width and
// height add up to more than the policy threshold. Amounts are rounded up to
// the next multiple of 10 minor units. Policy groups the constants so that
// markets can vary them; DefaultPolicy takes the larger basis, LegacySumPolicy
// reproduces the historical rule that charged both.
package pricing
