// Package cdpdoc provides a support chatbot for customer data platform
// documentation. It answers natural language "how-to" questions about
// Segment, mParticle, Lytics and Zeotap by retrieving passages from
// pre-scraped documentation and reformatting them as markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, tfidf/, gin/).
package cdpdoc
