// Selera - Restaurant Recommendation Engine
// Copyright 2026 Putu W. (putuwidya)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/putuwidya/selera

/*
Package recommend implements the restaurant recommendation engine.

A query flows through five stages:

 1. Entity extraction: the raw query is classified into typed terms
    (location, cuisine, mood, price, feature) by internal/entity.
 2. Candidate retrieval: two independent pools are built — a rule pool
    scored by weighted field overlap against the extracted entities,
    and a vector pool scored by TF-IDF cosine similarity against the
    catalog index. Each pool is capped before ranking.
 3. Boosting: every candidate's base score is multiplied through an
    ordered list of named boost rules (location, cuisine, preference,
    price, feature), then a combination bonus for multi-tier matches
    and a small rating-based quality bonus. The result is clipped to
    [0, 1].
 4. Ranking: pools are merged with per-id deduplication (max score,
    label union), sorted by score, rating, review count and a stable
    tie-break jitter, optionally re-ordered for cuisine diversity among
    near-ties, and truncated.
 5. Fallback: when retrieval produces nothing, a rating-sorted
    popularity list is served instead, tagged so callers can tell it
    apart from similarity-driven results.

The engine is constructed once over an immutable catalog and is safe
for concurrent use; no state is mutated after New returns.

Every threshold, weight and multiplier in the pipeline is named in
Config; see DefaultConfig for the production values.
*/
package recommend
