/*
Command necamingest ingests NeCam FITS images into the observation registry.

Necamingest reads the primary header of each FITS file named on the command
line (directories are walked), picks the translator whose recognition
predicate accepts the header, resolves the standardized observation metadata
schema, and applies the NeCam parse configuration to record one row per
image in a SQLite registry.

Usage

	necamingest [options] <file or directory>...
	necamingest [options] -l
	necamingest -h
	necamingest -v

Options

	-c <config-file>     YAML overrides of the ingest configuration
	-r <registry-file>   registry database, default registry.sqlite3
	-j <workers>         concurrent translations, default all cores
	-q                   log errors only
	-l                   list registered visits and exit

Exit status is nonzero if any file failed translation or was rejected by
the registry's uniqueness constraint.

# The ingest configuration

The built-in configuration maps raw NeCam keywords to registry columns
(IMGTYPE, EXPTIME, INSTRUME, RUN-ID, FILTER, OBJECT) and derives the
dateObs and taiObs columns from the compact DATE-OBS date.  Grouping keys,
the uniqueness key set and the column schema may be overridden with a YAML
file; overrides are validated for internal consistency before any file is
read.

-------------
Public domain.
*/
package main
